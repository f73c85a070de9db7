package response_models

type CreditBalanceResponse struct {
	Credits          int    `json:"credits"`
	IsTrialUser      bool   `json:"is_trial_user"`
	TrialStartDate   *int64 `json:"trial_start_date,omitempty"`
	TrialEndDate     *int64 `json:"trial_end_date,omitempty"`
	TrialCreditsUsed int    `json:"trial_credits_used"`
	TrialExpired     bool   `json:"trial_expired"`
}

type CreditTransactionResponse struct {
	ID                string  `json:"id"`
	Credits           int     `json:"credits"`
	Type              string  `json:"type"`
	Description       string  `json:"description"`
	RazorpayPaymentID *string `json:"razorpay_payment_id,omitempty"`
	CreatedAt         int64   `json:"created_at"`
}

type TrialResponse struct {
	Success      bool   `json:"success"`
	TrialEndDate string `json:"trialEndDate"`
	Credits      int    `json:"credits"`
}

// AccessDecision is the dashboard gating policy result: access requires a
// positive balance and, for trial users, an unexpired window.
type AccessDecision struct {
	CanAccess bool   `json:"can_access"`
	Reason    string `json:"reason,omitempty"` // no_account | no_credits | trial_expired
}
