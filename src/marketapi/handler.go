package marketapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/lokesh8898/nautilus/src/marketmodels"
	"github.com/lokesh8898/nautilus/src/nsecalendar"
)

var calendar *nsecalendar.HolidayCalendar

// SetupHandler wires the calendar query routes onto the router.
func SetupHandler(router *mux.Router, holidayCalendar *nsecalendar.HolidayCalendar) {
	calendar = holidayCalendar

	router.HandleFunc("/calendar/status", handleCalendarStatus)
	router.HandleFunc("/calendar/trading-days", handleTradingDays)
	router.HandleFunc("/expiries", handleExpiries)
	router.HandleFunc("/expiries/bucket", handleExpiryBucket)
	router.HandleFunc("/contracts/parse", handleParseContract)
	router.HandleFunc("/lot-sizes", handleLotSize)
}

// parseAndValidate runs the two-step request contract, writing the 400 on
// failure. Returns false when the handler should bail out.
func parseAndValidate(req ApiRequest, w http.ResponseWriter, r *http.Request) bool {
	if err := req.ParseHTTPRequest(r); err != nil {
		if respErr := SetErrorResponse("parser", 400, err, w); respErr != nil {
			log.Errorf("parseAndValidate: failed to set error response: %v", respErr)
		}
		return false
	}

	if err := req.Validate(r); err != nil {
		if respErr := SetErrorResponse("validation", 400, err, w); respErr != nil {
			log.Errorf("parseAndValidate: failed to set error response: %v", respErr)
		}
		return false
	}

	return true
}

type CalendarStatusResponse struct {
	Date              string `json:"date"`
	IsTradingDay      bool   `json:"is_trading_day"`
	IsHoliday         bool   `json:"is_holiday"`
	IsWeekend         bool   `json:"is_weekend"`
	IsExpiryDay       bool   `json:"is_expiry_day"`
	HolidayDataLoaded bool   `json:"holiday_data_loaded"`
}

func handleCalendarStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(405)
		return
	}

	req := new(CalendarStatusRequest)
	if !parseAndValidate(req, w, r) {
		return
	}

	weekday := req.date.Weekday()

	resp := CalendarStatusResponse{
		Date:              req.date.Format(dateLayout),
		IsTradingDay:      calendar.IsTradingDay(req.date),
		IsHoliday:         calendar.IsHoliday(req.date),
		IsWeekend:         weekday == time.Saturday || weekday == time.Sunday,
		IsExpiryDay:       calendar.IsExpiryDay(req.date),
		HolidayDataLoaded: calendar.CoversYear(req.date.Year()),
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("handleCalendarStatus: failed to set response: %v", err)
	}
}

type TradingDaysResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

func handleTradingDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(405)
		return
	}

	req := new(TradingDaysRequest)
	if !parseAndValidate(req, w, r) {
		return
	}

	days := calendar.TradingDaysInMonth(req.Year, time.Month(req.Month))

	dates := make([]string, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Format(dateLayout))
	}

	resp := TradingDaysResponse{
		Year:  req.Year,
		Month: req.Month,
		Dates: dates,
		Count: len(dates),
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("handleTradingDays: failed to set response: %v", err)
	}
}

type ExpiriesResponse struct {
	Year    int      `json:"year"`
	Month   int      `json:"month"`
	Monthly string   `json:"monthly"`
	Weekly  []string `json:"weekly"`
}

func handleExpiries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(405)
		return
	}

	req := new(ExpiriesRequest)
	if !parseAndValidate(req, w, r) {
		return
	}

	month := time.Month(req.Month)

	weeklies := calendar.WeeklyExpiries(req.Year, month)
	weekly := make([]string, 0, len(weeklies))
	for _, expiry := range weeklies {
		weekly = append(weekly, expiry.Format(dateLayout))
	}

	resp := ExpiriesResponse{
		Year:    req.Year,
		Month:   req.Month,
		Monthly: calendar.MonthlyExpiry(req.Year, month).Format(dateLayout),
		Weekly:  weekly,
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("handleExpiries: failed to set response: %v", err)
	}
}

type ExpiryBucketResponse struct {
	Expiry              string `json:"expiry"`
	AsOf                string `json:"as_of"`
	TradingDaysToExpiry int    `json:"trading_days_to_expiry"`
	Bucket              string `json:"bucket"`
	Description         string `json:"description"`
}

func handleExpiryBucket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(405)
		return
	}

	req := new(ExpiryBucketRequest)
	if !parseAndValidate(req, w, r) {
		return
	}

	dte, err := calendar.TradingDaysBetween(req.asOf, req.expiry)
	if err != nil {
		if respErr := SetErrorResponse("validation", 400, err, w); respErr != nil {
			log.Errorf("handleExpiryBucket: failed to set error response: %v", respErr)
		}
		return
	}

	bucket, err := calendar.ClassifyExpiryBucket(req.expiry, req.asOf)
	if err != nil {
		if respErr := SetErrorResponse("validation", 400, err, w); respErr != nil {
			log.Errorf("handleExpiryBucket: failed to set error response: %v", respErr)
		}
		return
	}

	resp := ExpiryBucketResponse{
		Expiry:              req.expiry.Format(dateLayout),
		AsOf:                req.asOf.Format(dateLayout),
		TradingDaysToExpiry: dte,
		Bucket:              string(bucket),
		Description:         bucket.Description(),
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("handleExpiryBucket: failed to set response: %v", err)
	}
}

type ParseContractResponse struct {
	Symbol         string  `json:"symbol"`
	InstrumentID   string  `json:"instrument_id"`
	Underlying     string  `json:"underlying"`
	AssetClass     string  `json:"asset_class"`
	OptionKind     string  `json:"option_kind"`
	StrikePrice    float64 `json:"strike_price"`
	Expiration     string  `json:"expiration"`
	LotSize        int     `json:"lot_size"`
	Multiplier     int     `json:"multiplier"`
	Currency       string  `json:"currency"`
	PricePrecision int     `json:"price_precision"`
	PriceIncrement float64 `json:"price_increment"`
}

func handleParseContract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(405)
		return
	}

	req := new(ParseContractRequest)
	if !parseAndValidate(req, w, r) {
		return
	}

	components, err := marketmodels.NewOptionSymbolComponents(marketmodels.OptionSymbol(req.Symbol))
	if err != nil {
		if respErr := SetErrorResponse("parser", 400, err, w); respErr != nil {
			log.Errorf("handleParseContract: failed to set error response: %v", respErr)
		}
		return
	}

	spec := marketmodels.NewOptionContractSpec(components, marketmodels.NSEVenue)

	resp := ParseContractResponse{
		Symbol:         req.Symbol,
		InstrumentID:   string(spec.InstrumentID),
		Underlying:     spec.Underlying,
		AssetClass:     string(spec.AssetClass),
		OptionKind:     string(spec.OptionKind),
		StrikePrice:    spec.StrikePrice,
		Expiration:     components.Expiration.Format(dateLayout),
		LotSize:        spec.LotSize,
		Multiplier:     spec.Multiplier,
		Currency:       spec.Currency,
		PricePrecision: spec.PricePrecision,
		PriceIncrement: spec.PriceIncrement,
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("handleParseContract: failed to set response: %v", err)
	}
}

type LotSizeResponse struct {
	Underlying string `json:"underlying"`
	LotSize    int    `json:"lot_size"`
	AssetClass string `json:"asset_class"`
}

func handleLotSize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(405)
		return
	}

	req := new(LotSizeRequest)
	if !parseAndValidate(req, w, r) {
		return
	}

	lotSize, assetClass := marketmodels.LotSizeFor(req.Underlying)

	resp := LotSizeResponse{
		Underlying: req.Underlying,
		LotSize:    lotSize,
		AssetClass: string(assetClass),
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("handleLotSize: failed to set response: %v", err)
	}
}
