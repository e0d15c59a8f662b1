package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/sampler/src/rng"
	"github.com/lost-woods/sampler/src/sample"
)

const (
	maxSampleLength = 1_000_000_000
	maxSampleCount  = 4096
)

// SampleIndices draws `count` distinct indices from [0, length), in random
// order. count > length is the infeasible-request outcome: reported as 400
// before any randomness is consumed.
func (h *Handlers) SampleIndices(c *gin.Context) {
	length, err := strconv.Atoi(c.DefaultQuery("length", "10"))
	if err != nil || length < 0 || length > maxSampleLength {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Length must be an integer between 0 and %d.", maxSampleLength))
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil || count < 0 || count > maxSampleCount {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Count must be an integer between 0 and %d.", maxSampleCount))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		indices, ok := sample.Sample(h.e, length, count)
		if !ok {
			return "", nil, http.StatusBadRequest,
				fmt.Sprintf("Cannot sample %d distinct indices from a range of length %d.", count, length)
		}
		if err := h.e.Err(); err != nil {
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error fetching random bytes."
		}

		return formatIndices(indices), gin.H{
			"indices": indices,
			"length":  length,
			"count":   count,
		}, 0, ""
	})
}

// Permutation returns a uniformly random ordering of [0, length); the
// count = length edge of the sampler.
func (h *Handlers) Permutation(c *gin.Context) {
	length, err := strconv.Atoi(c.DefaultQuery("length", "10"))
	if err != nil || length < 0 || length > maxSampleCount {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Length must be an integer between 0 and %d.", maxSampleCount))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		indices, _ := sample.Sample(h.e, length, length)
		if err := h.e.Err(); err != nil {
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error fetching random bytes."
		}

		return formatIndices(indices), gin.H{
			"permutation": indices,
			"length":      length,
		}, 0, ""
	})
}

func (h *Handlers) RandomNumber(c *gin.Context) {
	min, err := strconv.Atoi(c.DefaultQuery("min", "1"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid min value.")
		return
	}

	max, err := strconv.Atoi(c.DefaultQuery("max", "100"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid max value.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		n, err := rng.IntRange(h.e, min, max)
		if err != nil {
			return "", nil, http.StatusBadRequest, err.Error()
		}

		return fmt.Sprintf("%d", n),
			gin.H{"number": n, "min": min, "max": max},
			0, ""
	})
}

func (h *Handlers) RandomCards(c *gin.Context) {
	numDecks, err := strconv.Atoi(c.DefaultQuery("decks", "1"))
	if err != nil || numDecks < 1 || numDecks > 100 {
		responder{c}.err(http.StatusBadRequest, "Invalid deck count.")
		return
	}

	jokers, err := strconv.ParseBool(c.DefaultQuery("jokers", "false"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid jokers flag.")
		return
	}

	numCards, err := strconv.Atoi(c.DefaultQuery("cards", "1"))
	if err != nil || numCards < 1 {
		responder{c}.err(http.StatusBadRequest, "Invalid card count.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		deck := rng.NewDeck(numDecks, jokers)
		picked, ok := rng.DrawCards(h.e, deck, numCards)
		if !ok {
			return "", nil, http.StatusBadRequest,
				"There are more cards to pick than cards in the deck."
		}
		if err := h.e.Err(); err != nil {
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error fetching a random card."
		}

		var out bytes.Buffer
		for i, card := range picked {
			out.WriteString(card.Value + " of " + card.Suit)
			if i < len(picked)-1 {
				out.WriteByte('\n')
			}
		}

		return out.String(), gin.H{
			"decks":  numDecks,
			"jokers": jokers,
			"cards":  numCards,
			"drawn":  picked,
		}, 0, ""
	})
}

func (h *Handlers) RandomBytes(c *gin.Context) {
	const maxSize = 256

	sizeVar := c.DefaultQuery("size", "1")
	size, err := strconv.Atoi(sizeVar)
	if err != nil || size < 1 || size > maxSize {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Size must be an integer between 1 and %d.", maxSize))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		buf := make([]byte, size)
		if _, err := io.ReadFull(h.e, buf); err != nil {
			if h.health != nil {
				h.health.Set(false, "error fetching random bytes: "+err.Error())
			}
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error fetching random bytes."
		}

		hex := fmt.Sprintf("%x", buf)
		return hex, gin.H{"bytes": hex, "size": size}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	ok, msg, t := h.health.Snapshot()
	if ok {
		responder{c}.ok(
			fmt.Sprintf("OK (last checked %s)", t.Format(time.RFC3339)),
			gin.H{"ok": true, "last_checked": t.Format(time.RFC3339)},
			"health-check",
		)
		return
	}

	responder{c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", msg, t.Format(time.RFC3339)))
}

func formatIndices(indices []int) string {
	var out bytes.Buffer
	for i, idx := range indices {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(strconv.Itoa(idx))
	}
	return out.String()
}
