// Package chat sends questions to the company's assistant.
package chat
