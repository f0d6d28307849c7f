// Package product keeps a local mirror of the company's inventory.
//
// The mirror holds whichever listing was fetched last: the whole inventory
// or the products of a single category.
package product
