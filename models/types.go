// Package models contain needed models
package models

// MaxMessageLen is the longest message, in bytes, that the CLI and HTTP
// front ends accept. The cipher package itself is length-agnostic.
const MaxMessageLen = 1023

// CipherRequest represents a request to encrypt or decrypt a message
type CipherRequest struct {
	Key     string `json:"key" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CipherResponse represents the response after a cipher operation
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  string `json:"result,omitempty"`
}
