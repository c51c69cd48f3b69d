// Package handlers is made to handle requests
package handlers

import (
	"cipherbox/cipher"
	"cipherbox/models"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct {
	rng cipher.Range
}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{
		rng: cipher.Upper,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) CaesarEncrypt(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	key, err := cipher.ParseShiftKey(h.rng, req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message encrypted successfully",
		Result:  cipher.NewCaesar(h.rng, key).Encrypt(req.Message),
	})
}

func (h *CipherHandler) CaesarDecrypt(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	key, err := cipher.ParseShiftKey(h.rng, req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message decrypted successfully",
		Result:  cipher.NewCaesar(h.rng, key).Decrypt(req.Message),
	})
}

func (h *CipherHandler) VigenereEncrypt(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := cipher.ValidateKeyword(h.rng, req.Key); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message encrypted successfully",
		Result:  cipher.NewVigenere(h.rng, req.Key).Encrypt(req.Message),
	})
}

func (h *CipherHandler) VigenereDecrypt(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := cipher.ValidateKeyword(h.rng, req.Key); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Message decrypted successfully",
		Result:  cipher.NewVigenere(h.rng, req.Key).Decrypt(req.Message),
	})
}

// bindRequest decodes the JSON body and applies the shared message length
// policy. On failure it writes the error response and returns false.
func (h *CipherHandler) bindRequest(c *gin.Context) (models.CipherRequest, bool) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return req, false
	}

	if len(req.Message) > models.MaxMessageLen {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Message too long: maximum length is %d bytes", models.MaxMessageLen),
		})
		return req, false
	}

	return req, true
}
