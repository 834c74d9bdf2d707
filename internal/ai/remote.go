package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sueca-game/internal/protocol"
	"sueca-game/internal/shared"

	"golang.org/x/exp/slices"
)

var (
	// ErrBadStatus is returned for a non-2xx answer of the AI service.
	ErrBadStatus = errors.New("ai service returned an error status")
	// ErrUnknownCard is returned when the service names a card the seat cannot play.
	ErrUnknownCard = errors.New("ai service chose a card that is not playable")
)

// DefaultRemoteTimeout bounds one call to the AI service.
const DefaultRemoteTimeout = 800 * time.Millisecond

// RemoteChooser asks an HTTP AI service (POST {BaseURL}/play).
type RemoteChooser struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

// NewRequest encodes the view as the service's request body.
func NewRequest(v View) protocol.AIPlayRequest {
	trick := make([]shared.Card, len(v.Trick))
	for i, pc := range v.Trick {
		trick[i] = pc.Card
	}
	return protocol.AIPlayRequest{
		Hand:   shared.Codes(v.Hand),
		Trick:  shared.Codes(trick),
		Trump:  shared.SuitCode(v.Trump),
		Played: shared.Codes(v.Played),
	}
}

func (r RemoteChooser) ChooseCard(ctx context.Context, v View) (int, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(NewRequest(v))
	if err != nil {
		return NoCard, fmt.Errorf("encode ai request: %w", err)
	}
	url := strings.TrimRight(r.BaseURL, "/") + "/play"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return NoCard, fmt.Errorf("build ai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return NoCard, fmt.Errorf("call ai service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NoCard, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var out protocol.AIPlayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return NoCard, fmt.Errorf("decode ai response: %w", err)
	}
	if out.Play == "" {
		return NoCard, fmt.Errorf("decode ai response: empty play")
	}
	card, err := shared.ParseCode(out.Play)
	if err != nil {
		return NoCard, fmt.Errorf("%w: %v", ErrUnknownCard, err)
	}
	idx := shared.FindCard(v.Hand, card.Suit, card.Rank)
	if idx < 0 || !slices.Contains(LegalIndices(v.Hand, v.Trick), idx) {
		return NoCard, fmt.Errorf("%w: %s", ErrUnknownCard, out.Play)
	}
	return idx, nil
}

// ErrBadRequest is returned by ViewFromRequest for undecodable card codes.
var ErrBadRequest = errors.New("malformed ai request")

// ViewFromRequest is the inverse of NewRequest, used when this process serves
// /play. The trick is seated from 0 so the asking seat is len(trick).
func ViewFromRequest(req protocol.AIPlayRequest) (View, error) {
	var v View
	var err error
	parse := func(codes []string) ([]shared.Card, error) {
		out := make([]shared.Card, 0, len(codes))
		for _, code := range codes {
			c, err := shared.ParseCode(code)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
			}
			out = append(out, c)
		}
		return out, nil
	}

	if v.Trump, err = parseTrump(req.Trump); err != nil {
		return View{}, err
	}
	if v.Hand, err = parse(req.Hand); err != nil {
		return View{}, err
	}
	trick, err := parse(req.Trick)
	if err != nil {
		return View{}, err
	}
	if len(trick) > 3 {
		return View{}, fmt.Errorf("%w: trick holds %d cards", ErrBadRequest, len(trick))
	}
	for i, c := range trick {
		v.Trick = append(v.Trick, shared.PlayedCard{Card: c, Seat: i})
	}
	v.Seat = len(trick)

	seen := map[string]bool{}
	history := append([]string(nil), req.Played...)
	for _, t := range req.History {
		history = append(history, t...)
	}
	history = append(history, req.Trick...)
	for _, code := range history {
		c, err := shared.ParseCode(code)
		if err != nil {
			return View{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		if !seen[c.Code()] {
			seen[c.Code()] = true
			v.Played = append(v.Played, c)
		}
	}

	v.Difficulty = Medium
	if req.Difficulty != "" {
		if v.Difficulty, err = ParseDifficulty(req.Difficulty); err != nil {
			return View{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
	}
	return v, nil
}

// parseTrump accepts a suit letter or a suit name.
func parseTrump(s string) (shared.Suit, error) {
	if suit, err := shared.ParseSuitCode(s); err == nil {
		return suit, nil
	}
	name := shared.Suit(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(shared.Suits, name) {
		return name, nil
	}
	return "", fmt.Errorf("%w: unknown trump %q", ErrBadRequest, s)
}
