package dto

type AttachPaymentProofRequest struct {
	ReferenceCode *string `json:"referenceCode" validate:"omitempty,max=100"`
	ScreenshotURL *string `json:"screenshotUrl" validate:"omitempty,url"`
}

// VerifyPaymentRequest is the admin decision: VERIFIED or REJECTED.
type VerifyPaymentRequest struct {
	Status string `json:"status" validate:"required"`
}

type PaymentListQuery struct {
	ListQuery
	Status      string `form:"status"`
	PaymentType string `form:"paymentType"`
	UserID      string `form:"userId"`
	EventID     string `form:"eventId"`
	BusinessID  string `form:"businessId"`
	JobPostID   string `form:"jobPostId"`
}
