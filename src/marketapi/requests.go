package marketapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/schema"
)

const dateLayout = "2006-01-02"

// ApiRequest is the query-request contract: decode the raw request, then
// validate and normalize the decoded fields.
type ApiRequest interface {
	ParseHTTPRequest(r *http.Request) error
	Validate(r *http.Request) error
}

func decodeQuery(dst interface{}, r *http.Request) error {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return decoder.Decode(dst, r.URL.Query())
}

type CalendarStatusRequest struct {
	Date string `schema:"date"`

	date time.Time
}

func (req *CalendarStatusRequest) ParseHTTPRequest(r *http.Request) error {
	if err := decodeQuery(req, r); err != nil {
		return fmt.Errorf("CalendarStatusRequest: ParseHTTPRequest: %w", err)
	}

	return nil
}

func (req *CalendarStatusRequest) Validate(r *http.Request) error {
	if req.Date == "" {
		return fmt.Errorf("CalendarStatusRequest: Validate: date is required")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("CalendarStatusRequest: Validate: invalid date %q: %w", req.Date, err)
	}

	req.date = date
	return nil
}

type TradingDaysRequest struct {
	Year  int `schema:"year"`
	Month int `schema:"month"`
}

func (req *TradingDaysRequest) ParseHTTPRequest(r *http.Request) error {
	if err := decodeQuery(req, r); err != nil {
		return fmt.Errorf("TradingDaysRequest: ParseHTTPRequest: %w", err)
	}

	return nil
}

func (req *TradingDaysRequest) Validate(r *http.Request) error {
	if req.Year == 0 {
		return fmt.Errorf("TradingDaysRequest: Validate: year is required")
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("TradingDaysRequest: Validate: month must be between 1 and 12, got %d", req.Month)
	}

	return nil
}

type ExpiriesRequest struct {
	Year  int `schema:"year"`
	Month int `schema:"month"`
}

func (req *ExpiriesRequest) ParseHTTPRequest(r *http.Request) error {
	if err := decodeQuery(req, r); err != nil {
		return fmt.Errorf("ExpiriesRequest: ParseHTTPRequest: %w", err)
	}

	return nil
}

func (req *ExpiriesRequest) Validate(r *http.Request) error {
	if req.Year == 0 {
		return fmt.Errorf("ExpiriesRequest: Validate: year is required")
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("ExpiriesRequest: Validate: month must be between 1 and 12, got %d", req.Month)
	}

	return nil
}

type ExpiryBucketRequest struct {
	Expiry string `schema:"expiry"`
	AsOf   string `schema:"as_of"`

	expiry time.Time
	asOf   time.Time
}

func (req *ExpiryBucketRequest) ParseHTTPRequest(r *http.Request) error {
	if err := decodeQuery(req, r); err != nil {
		return fmt.Errorf("ExpiryBucketRequest: ParseHTTPRequest: %w", err)
	}

	return nil
}

func (req *ExpiryBucketRequest) Validate(r *http.Request) error {
	if req.Expiry == "" || req.AsOf == "" {
		return fmt.Errorf("ExpiryBucketRequest: Validate: expiry and as_of are required")
	}

	expiry, err := time.Parse(dateLayout, req.Expiry)
	if err != nil {
		return fmt.Errorf("ExpiryBucketRequest: Validate: invalid expiry %q: %w", req.Expiry, err)
	}

	asOf, err := time.Parse(dateLayout, req.AsOf)
	if err != nil {
		return fmt.Errorf("ExpiryBucketRequest: Validate: invalid as_of %q: %w", req.AsOf, err)
	}

	req.expiry = expiry
	req.asOf = asOf
	return nil
}

type ParseContractRequest struct {
	Symbol string `schema:"symbol"`
}

func (req *ParseContractRequest) ParseHTTPRequest(r *http.Request) error {
	if err := decodeQuery(req, r); err != nil {
		return fmt.Errorf("ParseContractRequest: ParseHTTPRequest: %w", err)
	}

	return nil
}

func (req *ParseContractRequest) Validate(r *http.Request) error {
	if req.Symbol == "" {
		return fmt.Errorf("ParseContractRequest: Validate: symbol is required")
	}

	return nil
}

type LotSizeRequest struct {
	Underlying string `schema:"underlying"`
}

func (req *LotSizeRequest) ParseHTTPRequest(r *http.Request) error {
	if err := decodeQuery(req, r); err != nil {
		return fmt.Errorf("LotSizeRequest: ParseHTTPRequest: %w", err)
	}

	return nil
}

func (req *LotSizeRequest) Validate(r *http.Request) error {
	if req.Underlying == "" {
		return fmt.Errorf("LotSizeRequest: Validate: underlying is required")
	}

	return nil
}
