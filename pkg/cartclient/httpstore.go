package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"

	"atelier-store/internal/pkg/errs"
)

// Sentinel errors mapped from the store's HTTP statuses so embedding code
// can branch without inspecting status codes.
var (
	ErrAlreadyHeld     = errs.New("product is held by another shopper")
	ErrProductSold     = errs.New("product has been sold")
	ErrProductNotFound = errs.New("product not found")
)

const requestTimeout = 10 * time.Second

// HTTPStore talks to the reservation API over HTTP. The session cookie the
// server mints on first touch lives in the client's jar, so one HTTPStore is
// one shopper session.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStore(baseURL string) (*HTTPStore, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create cookie jar")
	}
	return &HTTPStore{
		baseURL: baseURL,
		client: &http.Client{
			Jar:     jar,
			Timeout: requestTimeout,
		},
	}, nil
}

type holdPayload struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	Status        string    `json:"status"`
	ReservedUntil wireTime  `json:"reserved_until"`
	CreatedAt     wireTime  `json:"created_at"`
}

type cartPayload struct {
	Items []holdPayload `json:"items"`
}

// wireTime accepts RFC3339 timestamps and, for stores that emit zone-less
// ones, interprets them as UTC. A naive timestamp read in local time would
// make the countdown drift by the whole zone offset.
type wireTime struct {
	time.Time
}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		w.Time = t.UTC()
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC)
	if err != nil {
		return errs.Wrap(err, "unparseable timestamp")
	}
	w.Time = t
	return nil
}

func (s *HTTPStore) Reserve(ctx context.Context, productID uuid.UUID) (Item, error) {
	body, err := json.Marshal(map[string]string{"product_id": productID.String()})
	if err != nil {
		return Item{}, errs.Wrap(err, "failed to encode reserve request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/cart/items", bytes.NewReader(body))
	if err != nil {
		return Item{}, errs.Wrap(err, "failed to build reserve request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Item{}, errs.Wrap(err, "reserve request failed")
	}
	defer drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusConflict:
		return Item{}, ErrAlreadyHeld
	case http.StatusGone:
		return Item{}, ErrProductSold
	case http.StatusNotFound:
		return Item{}, ErrProductNotFound
	default:
		return Item{}, errs.New(fmt.Sprintf("reserve returned status %d", resp.StatusCode))
	}

	var payload holdPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Item{}, errs.Wrap(err, "failed to decode reserve response")
	}
	return Item{
		ProductID:     payload.ProductID,
		ReservedUntil: payload.ReservedUntil.Time,
	}, nil
}

func (s *HTTPStore) Release(ctx context.Context, productID uuid.UUID) error {
	url := s.baseURL + "/api/cart/items/" + productID.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build release request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "release request failed")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusNoContent {
		return errs.New(fmt.Sprintf("release returned status %d", resp.StatusCode))
	}
	return nil
}

func (s *HTTPStore) ListActive(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/cart", nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build cart request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "cart request failed")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("cart returned status %d", resp.StatusCode))
	}

	var payload cartPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart response")
	}

	items := make([]Item, len(payload.Items))
	for i, hold := range payload.Items {
		items[i] = Item{
			ProductID:     hold.ProductID,
			ReservedUntil: hold.ReservedUntil.Time,
		}
	}
	return items, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
