package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent_Success(t *testing.T) {
	env := setupEnv()
	token, _ := env.registerAndLogin(t, "Ana", "ana@x.com", "pw1")

	w := env.do(http.MethodPost, "/payment/create", token, gin.H{"amount": 13225, "currency": "usd"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_secret_abc", resp["clientSecret"])
}

func TestCreateIntent_GatewayError(t *testing.T) {
	env := setupEnv()
	env.gateway.err = apperrors.ErrPaymentFailed
	token, _ := env.registerAndLogin(t, "Ana", "ana@x.com", "pw1")

	w := env.do(http.MethodPost, "/payment/create", token, gin.H{"amount": 13225})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateIntent_InvalidAmount(t *testing.T) {
	env := setupEnv()
	token, _ := env.registerAndLogin(t, "Ana", "ana@x.com", "pw1")

	w := env.do(http.MethodPost, "/payment/create", token, gin.H{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/payment/create", token, gin.H{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
