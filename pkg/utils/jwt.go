package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/oceanshop/storefront/pkg/errs"
)

func CreateSessionToken(uid string, email string, displayName string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["uid"] = uid
	claims["email"] = email
	claims["name"] = displayName
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

func ParseSessionToken(tokenString string, jwtSecretKey string) (uid string, email string, displayName string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", "", "", errs.ErrExpiredToken
		}
		return "", "", "", errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errs.ErrNotLoggedIn
	}

	uid, _ = claims["uid"].(string)
	email, _ = claims["email"].(string)
	displayName, _ = claims["name"].(string)
	if uid == "" {
		return "", "", "", errs.ErrNotLoggedIn
	}

	return uid, email, displayName, nil
}
