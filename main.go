package main

// GET  /products/list  - For listing all products
// GET  /cart/list      - For listing cart products with totals
// POST /cart/add       - To add one unit of a product to the cart
// POST /cart/remove    - To remove a product from the cart
// POST /cart/quantity  - To set the quantity of a product in the cart
// POST /checkout/order - For a checkout

import (
	"fmt"
	"os"

	"storefront/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
}
