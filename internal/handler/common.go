package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const invalidRequestMessage = "Invalid request format"

func BindJson(c *gin.Context, obj interface{}) error {
	return bindRequest(c, c.ShouldBindJSON(obj))
}

func BindQuery(c *gin.Context, obj interface{}) error {
	return bindRequest(c, c.ShouldBindQuery(obj))
}

func BindUri(c *gin.Context, obj interface{}) error {
	return bindRequest(c, c.ShouldBindUri(obj))
}

// bindRequest 綁定失敗時回 400；驗證錯誤會列出不合格的欄位
func bindRequest(c *gin.Context, err error) error {
	if err == nil {
		return nil
	}

	body := gin.H{"error": invalidRequestMessage}
	if fields := invalidFields(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
	return err
}

// invalidFields 將 validator 錯誤轉為 "field: rule" 形式
func invalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fe.Param())
		}
		fields = append(fields, fmt.Sprintf("%s: %s", lowerFirst(fe.Field()), rule))
	}
	return fields
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
