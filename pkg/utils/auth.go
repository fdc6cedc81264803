package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
)

// GetClaims returns the authenticated caller's claims from the context.
func GetClaims(c *gin.Context) (*types.Claims, error) {
	val, ok := c.Get("claims")
	if !ok {
		return nil, errors.New("missing claims")
	}
	claims, ok := val.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// ParseIDParam parses a uint URL parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
