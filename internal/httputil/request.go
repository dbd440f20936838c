package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
var ErrRequestBodyEmpty = errors.New("the request body must not be empty")
var ErrRequestBodyInvalid = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

// BindData binds the JSON request body to the struct passed in.
// It does not write a response, the caller owns the error rendering.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrRequestBodyInvalid
	}

	return nil
}
