package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "razorpay-gateway",
	Short: "Razorpay gateway service",
	Long:  "A web-service facade over the Razorpay payment gateway: orders, payment verification and capture, subscriptions, and webhook-driven mirroring.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
