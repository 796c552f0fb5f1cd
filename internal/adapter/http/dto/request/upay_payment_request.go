package request

import "upay_gateway/internal/domain/entities"

// BulkPaymentStatusRequest asks for the status of several transactions.
// The list is forwarded as given: order and duplicates are kept.
type BulkPaymentStatusRequest struct {
	TxnIDList []string `json:"txn_id_list" binding:"required,min=1,dive,required"`
}

type RefundItemRequest struct {
	TxnID        string  `json:"txn_id" binding:"required"`
	RefundAmount float64 `json:"refund_amount" binding:"gt=0"`
}

// BulkRefundRequest is the payload for the bulk refund route.
type BulkRefundRequest struct {
	Refunds []RefundItemRequest `json:"refunds" binding:"required,min=1,dive"`
}

func (r BulkRefundRequest) ToEntities() []entities.RefundItem {
	items := make([]entities.RefundItem, 0, len(r.Refunds))
	for _, it := range r.Refunds {
		items = append(items, entities.RefundItem{TxnID: it.TxnID, RefundAmount: it.RefundAmount})
	}
	return items
}
