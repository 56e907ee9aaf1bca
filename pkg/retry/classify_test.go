package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want Class
	}{
		{"config wins over transient", "API key timeout", ClassConfig},
		{"session wins over permanent", "CAPTCHA not found", ClassSession},
		{"plain config", "missing configuration: api key", ClassConfig},
		{"plain session", "401 unauthorized, login required", ClassSession},
		{"plain permanent", "404 page not found", ClassPermanent},
		{"plain transient", "connection reset by peer", ClassTransient},
		{"unknown defaults to transient", "something weird happened", ClassTransient},
		{"case insensitive", "API KEY missing", ClassConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMessage(tt.msg))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassTransient, Classify(nil))
	assert.Equal(t, ClassPermanent, Classify(errors.New("404 not found")))
}
