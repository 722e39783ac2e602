package enum

// ActivityType labels an audit-log entry with the mutating action it records.
type ActivityType string

const (
	ActivityCustomerCreated  ActivityType = "customer.created"
	ActivityCustomerUpdated  ActivityType = "customer.updated"
	ActivityCustomerDeleted  ActivityType = "customer.deleted"
	ActivityClothTypeCreated ActivityType = "cloth_type.created"
	ActivityClothTypeUpdated ActivityType = "cloth_type.updated"
	ActivityClothTypeDeleted ActivityType = "cloth_type.deleted"
	ActivityOrderCreated     ActivityType = "order.created"
	ActivityOrderUpdated     ActivityType = "order.updated"
	ActivityOrderDeleted     ActivityType = "order.deleted"
	ActivityBillGenerated    ActivityType = "bill.generated"
	ActivityBillUpdated      ActivityType = "bill.updated"
	ActivityBillDeleted      ActivityType = "bill.deleted"
	ActivityShopUpdated      ActivityType = "shop.updated"
)
