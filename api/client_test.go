package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chakula-app/chakula-client/config"
	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/stores"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testClient(t *testing.T, engine *gin.Engine) (*Client, *stores.Session) {
	t.Helper()
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	session := stores.NewSession()
	session.SetTokens(models.TokenPair{Access: "old-access", Refresh: "good-refresh"})
	session.SetUser(models.User{ID: "u-1", Email: "asha@example.com", Role: models.RoleCustomer})

	client := New(config.Config{BaseURL: server.URL, RequestTimeout: 5 * time.Second}, session)
	return client, session
}

func TestExecuteDecodesSuccess(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/v1/ping/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	client, _ := testClient(t, engine)

	var out struct {
		Message string `json:"message"`
	}
	err := client.Execute("test.Ping", client.R(context.Background()), resty.MethodGet, "/api/v1/ping/", &out)
	require.NoError(t, err)
	assert.Equal(t, "pong", out.Message)
}

func TestExecuteAttachesBearerToken(t *testing.T) {
	var got string
	engine := gin.New()
	engine.GET("/api/v1/ping/", func(ctx *gin.Context) {
		got = ctx.GetHeader("Authorization")
		ctx.JSON(http.StatusOK, gin.H{})
	})
	client, _ := testClient(t, engine)

	require.NoError(t, client.Execute("test.Ping", client.R(context.Background()), resty.MethodGet, "/api/v1/ping/", nil))
	assert.Equal(t, "Bearer old-access", got)
}

func TestExecuteRefreshesOnceOn401(t *testing.T) {
	var pingCalls, refreshCalls int
	var retryAuth string

	engine := gin.New()
	engine.GET("/api/v1/ping/", func(ctx *gin.Context) {
		pingCalls++
		if ctx.GetHeader("Authorization") != "Bearer new-access" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "token expired"})
			return
		}
		retryAuth = ctx.GetHeader("Authorization")
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.POST("/api/v1/auth/jwt/refresh/", func(ctx *gin.Context) {
		refreshCalls++
		var body struct {
			Refresh string `json:"refresh"`
		}
		require.NoError(t, ctx.ShouldBindJSON(&body))
		assert.Equal(t, "good-refresh", body.Refresh)
		ctx.JSON(http.StatusOK, gin.H{"access": "new-access"})
	})
	client, session := testClient(t, engine)

	err := client.Execute("test.Ping", client.R(context.Background()), resty.MethodGet, "/api/v1/ping/", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, pingCalls, "request is retried exactly once")
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, "Bearer new-access", retryAuth)
	assert.Equal(t, "new-access", session.AccessToken())
	assert.Equal(t, "good-refresh", session.RefreshToken())
}

func TestExecuteClearsSessionWhenRefreshFails(t *testing.T) {
	var pingCalls int
	engine := gin.New()
	engine.GET("/api/v1/ping/", func(ctx *gin.Context) {
		pingCalls++
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "token expired"})
	})
	engine.POST("/api/v1/auth/jwt/refresh/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "refresh expired"})
	})
	client, session := testClient(t, engine)

	err := client.Execute("test.Ping", client.R(context.Background()), resty.MethodGet, "/api/v1/ping/", nil)
	assert.ErrorIs(t, err, models.ErrAuthExpired)
	assert.Equal(t, 1, pingCalls, "no retry without a fresh token")
	assert.False(t, session.Authenticated(), "failed refresh clears the session")
	assert.Empty(t, session.AccessToken())
}

func TestExecuteDoesNotRefreshAuthEndpoints(t *testing.T) {
	var refreshCalls int
	engine := gin.New()
	engine.POST("/api/v1/auth/jwt/create/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "bad credentials"})
	})
	engine.POST("/api/v1/auth/jwt/refresh/", func(ctx *gin.Context) {
		refreshCalls++
		ctx.JSON(http.StatusOK, gin.H{"access": "new-access"})
	})
	client, _ := testClient(t, engine)

	err := client.Execute("auth.Login", client.R(context.Background()), resty.MethodPost, "/api/v1/auth/jwt/create/", nil)
	assert.ErrorIs(t, err, models.ErrAuthExpired)
	assert.Equal(t, 0, refreshCalls, "a 401 from the auth endpoints is final")
}

func TestExecuteMapsValidationErrors(t *testing.T) {
	engine := gin.New()
	engine.POST("/api/v1/cart/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "item unavailable"})
	})
	client, _ := testClient(t, engine)

	err := client.Execute("cart.Add", client.R(context.Background()), resty.MethodPost, "/api/v1/cart/", nil)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "item unavailable")
}

func TestExecuteMapsServerErrorsToNetwork(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/v1/cart/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "boom"})
	})
	client, _ := testClient(t, engine)

	err := client.Execute("cart.Fetch", client.R(context.Background()), resty.MethodGet, "/api/v1/cart/", nil)
	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.True(t, models.IsRetryable(err))
}

func TestExecuteTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(gin.New())
	session := stores.NewSession()
	client := New(config.Config{BaseURL: server.URL, RequestTimeout: time.Second}, session)
	server.Close()

	err := client.Execute("cart.Fetch", client.R(context.Background()), resty.MethodGet, "/api/v1/cart/", nil)
	require.ErrorIs(t, err, models.ErrNetwork)
	assert.True(t, models.IsRetryable(err))
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	session := stores.NewSession()
	client := New(config.Config{BaseURL: "http://example.test/", RequestTimeout: time.Second}, session)
	assert.False(t, strings.HasSuffix(client.baseURL, "/"))
}
