// Package assistant answers business questions for a company.
//
// A Service loads the company's profile, products, clients and recent chat
// history, renders them into model instructions, asks an Assistant and stores
// the exchange. Gemini is used when an API key is configured; Placeholder
// answers otherwise so the chat endpoint keeps working offline.
package assistant
