package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh unique id for a domain record. It prefers a
// random UUID; if the crypto source is unavailable it falls back to a
// timestamp plus random suffix. Uniqueness is probabilistic, not
// enforced.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%d-%06d", time.Now().UnixNano(), rand.Intn(1_000_000))
	}
	return id.String()
}
