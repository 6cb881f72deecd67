package controllers

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errNotObject = errors.New("request body must be a JSON object")

// storeContext bounds a single store call. A zero timeout means the call
// only ends with the request.
func storeContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// bindObject decodes the body as a JSON object. An empty body reads as {}.
func bindObject(c *gin.Context) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if c.Request.Body == nil {
		return body, nil
	}

	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	if err := binding.JSON.BindBody(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errNotObject
	}
	return body, nil
}
