package apierr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusMapping(t *testing.T) {
	cases := map[*Error]int{
		BadInput("x"):       http.StatusBadRequest,
		BadToken("x"):       http.StatusForbidden,
		NotFound("x"):       http.StatusNotFound,
		StateViolation("x"): http.StatusConflict,
		Gone("x"):           http.StatusGone,
		Unsupported("x"):    http.StatusNotImplemented,
	}
	for err, status := range cases {
		assert.Equal(t, status, err.Kind.Status())
	}
}

func TestErrorMessage(t *testing.T) {
	err := StateViolation("round already ended")
	assert.Equal(t, "round already ended", err.Error())
}
