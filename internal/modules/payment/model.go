package payment

// ProviderResponse is the acknowledgment a payment provider returns after an
// STK push is initiated. It mirrors the Daraja response shape; a response
// only acknowledges the request, never synchronous success.
type ProviderResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// PayOrderRequest is the payload for initiating payment of an order.
type PayOrderRequest struct {
	Phone string `json:"phone"`
}

// PayOrderResponse is returned to the caller after the provider accepts the
// payment request.
type PayOrderResponse struct {
	OK             bool              `json:"ok"`
	DarajaResponse *ProviderResponse `json:"daraja_response"`
}
