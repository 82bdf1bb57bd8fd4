package main

import "github.com/apexneural-PraveenJogi/razorpay/cmd"

func main() {
	cmd.Execute()
}
