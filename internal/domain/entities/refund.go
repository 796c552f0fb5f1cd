package entities

// RefundItem is one entry of a bulk refund. The list order is preserved on the wire.
type RefundItem struct {
	TxnID        string  `json:"txn_id" validate:"required"`
	RefundAmount float64 `json:"refund_amount" validate:"gt=0"`
}
