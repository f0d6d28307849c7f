// Package category keeps a local mirror of the company's categories.
//
// Categories group either clients (typeon 1) or inventory (typeon 2).
package category
