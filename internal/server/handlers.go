package server

import (
	"net/http"
	"time"

	"github.com/Husnain585/Calculator-sub000/pkg/amortize"
	"github.com/Husnain585/Calculator-sub000/pkg/convert"
	"github.com/Husnain585/Calculator-sub000/pkg/datetime"
	"github.com/Husnain585/Calculator-sub000/pkg/debtplan"
	"github.com/Husnain585/Calculator-sub000/pkg/finance"
	"github.com/Husnain585/Calculator-sub000/pkg/growth"
	"github.com/Husnain585/Calculator-sub000/pkg/health"
	"github.com/Husnain585/Calculator-sub000/pkg/numbers"
	"github.com/Husnain585/Calculator-sub000/pkg/password"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

type amortizationRequest struct {
	amortize.Terms

	// Pretty additionally renders the schedule as a plain-text table.
	Pretty bool `json:"pretty,omitempty"`
}

type amortizationResult struct {
	amortize.Result
	CSV    string `json:"csv"`
	Pretty string `json:"pretty,omitempty"`
}

func (h *handler) handleAmortization(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req amortizationRequest
	if !h.decode(w, r, "server.handleAmortization", &req) {
		return
	}

	result, err := amortize.Compute(req.Terms)
	if err != nil {
		h.respondCalcError(w, err, "server.handleAmortization")
		return
	}

	payload := amortizationResult{Result: result, CSV: amortize.CSVString(result)}
	if req.Pretty {
		payload.Pretty = amortize.PrettyString(result)
	}
	h.finish(w, r, "amortization", payload, start)
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var terms amortize.MortgageTerms
	if !h.decode(w, r, "server.handleMortgage", &terms) {
		return
	}

	result, err := amortize.Mortgage(terms)
	if err != nil {
		h.respondCalcError(w, err, "server.handleMortgage")
		return
	}

	h.finish(w, r, "mortgage", result, start)
}

func (h *handler) handleFutureValue(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var params growth.Parameters
	if !h.decode(w, r, "server.handleFutureValue", &params) {
		return
	}

	result, err := growth.FutureValue(params)
	if err != nil {
		h.respondCalcError(w, err, "server.handleFutureValue")
		return
	}

	h.finish(w, r, "future-value", result, start)
}

type simpleInterestRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	Years             int     `json:"years"`
}

func (h *handler) handleSimpleInterest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req simpleInterestRequest
	if !h.decode(w, r, "server.handleSimpleInterest", &req) {
		return
	}

	result, err := growth.SimpleInterest(req.Principal, req.AnnualRatePercent, req.Years)
	if err != nil {
		h.respondCalcError(w, err, "server.handleSimpleInterest")
		return
	}

	h.finish(w, r, "simple-interest", result, start)
}

func (h *handler) handleRetirement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var plan growth.RetirementPlan
	if !h.decode(w, r, "server.handleRetirement", &plan) {
		return
	}

	result, err := growth.Retirement(plan)
	if err != nil {
		h.respondCalcError(w, err, "server.handleRetirement")
		return
	}

	h.finish(w, r, "retirement", result, start)
}

type debtPayoffRequest struct {
	Debts []debtplan.Debt `json:"debts"`

	// MonthlyBudget, when positive, additionally compares snowball and
	// avalanche rollover strategies under that budget.
	MonthlyBudget float64 `json:"monthlyBudget,omitempty"`
}

type debtPayoffResult struct {
	debtplan.PayoffResult
	Strategies *debtplan.StrategyComparison `json:"strategies,omitempty"`
}

func (h *handler) handleDebtPayoff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req debtPayoffRequest
	if !h.decode(w, r, "server.handleDebtPayoff", &req) {
		return
	}

	result, err := debtplan.Simulate(req.Debts)
	if err != nil {
		h.respondCalcError(w, err, "server.handleDebtPayoff")
		return
	}

	payload := debtPayoffResult{PayoffResult: result}
	if req.MonthlyBudget > 0 {
		comparison, err := debtplan.CompareStrategies(req.Debts, req.MonthlyBudget)
		if err != nil {
			h.respondCalcError(w, err, "server.handleDebtPayoff")
			return
		}
		payload.Strategies = &comparison
	}

	h.finish(w, r, "debt-payoff", payload, start)
}

type debtConsolidationRequest struct {
	Debts []debtplan.Debt             `json:"debts"`
	Offer debtplan.ConsolidationOffer `json:"offer"`
}

func (h *handler) handleDebtConsolidation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req debtConsolidationRequest
	if !h.decode(w, r, "server.handleDebtConsolidation", &req) {
		return
	}

	result, err := debtplan.Consolidate(req.Debts, req.Offer)
	if err != nil {
		h.respondCalcError(w, err, "server.handleDebtConsolidation")
		return
	}

	h.finish(w, r, "debt-consolidation", result, start)
}

func (h *handler) handleTip(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var input finance.TipInput
	if !h.decode(w, r, "server.handleTip", &input) {
		return
	}

	result, err := finance.Tip(input)
	if err != nil {
		h.respondCalcError(w, err, "server.handleTip")
		return
	}

	h.finish(w, r, "tip", result, start)
}

func (h *handler) handleSalesTax(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var input finance.SalesTaxInput
	if !h.decode(w, r, "server.handleSalesTax", &input) {
		return
	}

	result, err := finance.SalesTax(input)
	if err != nil {
		h.respondCalcError(w, err, "server.handleSalesTax")
		return
	}

	h.finish(w, r, "sales-tax", result, start)
}

type gcdRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

type gcdResult struct {
	GCD int64 `json:"gcd"`
	LCM int64 `json:"lcm"`
}

func (h *handler) handleGCD(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req gcdRequest
	if !h.decode(w, r, "server.handleGCD", &req) {
		return
	}

	divisor, err := numbers.GCD(req.A, req.B)
	if err != nil {
		h.respondCalcError(w, err, "server.handleGCD")
		return
	}
	multiple, err := numbers.LCM(req.A, req.B)
	if err != nil {
		h.respondCalcError(w, err, "server.handleGCD")
		return
	}

	h.finish(w, r, "gcd", gcdResult{GCD: divisor, LCM: multiple}, start)
}

type fractionRequest struct {
	Operation string           `json:"operation"` // simplify, add, subtract, multiply, divide
	A         numbers.Fraction `json:"a"`
	B         numbers.Fraction `json:"b"`
}

func (h *handler) handleFraction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req fractionRequest
	if !h.decode(w, r, "server.handleFraction", &req) {
		return
	}

	var result numbers.Fraction
	var err error
	switch req.Operation {
	case "simplify", "":
		result, err = req.A.Simplify()
	case "add":
		result, err = req.A.Add(req.B)
	case "subtract":
		result, err = req.A.Subtract(req.B)
	case "multiply":
		result, err = req.A.Multiply(req.B)
	case "divide":
		result, err = req.A.Divide(req.B)
	default:
		err = validation.NewError("operation", "unknown operation %q", req.Operation)
	}
	if err != nil {
		h.respondCalcError(w, err, "server.handleFraction")
		return
	}

	h.finish(w, r, "fraction", result, start)
}

type unitConversionRequest struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
}

type unitConversionResult struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (h *handler) handleUnitConversion(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req unitConversionRequest
	if !h.decode(w, r, "server.handleUnitConversion", &req) {
		return
	}

	value, err := convert.Convert(req.Category, req.From, req.To, req.Value)
	if err != nil {
		h.respondCalcError(w, err, "server.handleUnitConversion")
		return
	}

	h.finish(w, r, "unit-conversion", unitConversionResult{Value: value, Unit: req.To}, start)
}

func (h *handler) handleBodyFat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var input health.BodyFatInput
	if !h.decode(w, r, "server.handleBodyFat", &input) {
		return
	}

	result, err := health.BodyFat(input)
	if err != nil {
		h.respondCalcError(w, err, "server.handleBodyFat")
		return
	}

	h.finish(w, r, "body-fat", result, start)
}

func (h *handler) handleCalories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var input health.CalorieInput
	if !h.decode(w, r, "server.handleCalories", &input) {
		return
	}

	result, err := health.Calories(input)
	if err != nil {
		h.respondCalcError(w, err, "server.handleCalories")
		return
	}

	h.finish(w, r, "calories", result, start)
}

func (h *handler) handlePace(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var input health.PaceInput
	if !h.decode(w, r, "server.handlePace", &input) {
		return
	}

	result, err := health.Pace(input)
	if err != nil {
		h.respondCalcError(w, err, "server.handlePace")
		return
	}

	h.finish(w, r, "pace", result, start)
}

func (h *handler) handlePassword(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var opts password.Options
	if !h.decode(w, r, "server.handlePassword", &opts) {
		return
	}

	result, err := password.Generate(opts)
	if err != nil {
		h.respondCalcError(w, err, "server.handlePassword")
		return
	}

	// The generated password stays out of history and suggestion payloads.
	recorded := password.Result{EntropyBits: result.EntropyBits, Strength: result.Strength}
	h.finishWithRecord(w, r, "password", result, recorded, start)
}

type ageRequest struct {
	DateOfBirth string `json:"dateOfBirth"`
	AsOf        string `json:"asOf,omitempty"`
}

func (h *handler) handleAge(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req ageRequest
	if !h.decode(w, r, "server.handleAge", &req) {
		return
	}

	var result datetime.Age
	var err error
	if req.AsOf != "" {
		result, err = datetime.AgeAt(req.DateOfBirth, req.AsOf)
	} else {
		result, err = datetime.AgeNow(req.DateOfBirth)
	}
	if err != nil {
		h.respondCalcError(w, err, "server.handleAge")
		return
	}

	h.finish(w, r, "age", result, start)
}
