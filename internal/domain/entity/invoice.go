package entity

// InvoiceHeader holds the shop header shown at the top of an invoice.
type InvoiceHeader struct {
	ShopName       string `json:"shop_name"`
	Address        string `json:"address,omitempty"`
	Mobile         string `json:"mobile,omitempty"`
	Email          string `json:"email,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
}

// InvoiceLine is a single rendered line item: a cloth-type description with
// quantity, rate and line total. Description falls back to "N/A" when the
// referenced cloth type no longer exists.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitRate    float64 `json:"unit_rate"`
	LineTotal   float64 `json:"line_total"`
}

// Invoice is a value object composed from bill, customer, order and catalog
// data at render time. It is NOT a database entity; its lifetime ends at the
// rendered HTML document.
type Invoice struct {
	Header          InvoiceHeader `json:"header"`
	InvoiceNo       string        `json:"invoice_no"`
	IssueDate       string        `json:"issue_date"`
	CustomerName    string        `json:"customer_name"`
	CustomerAddress string        `json:"customer_address,omitempty"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	PeriodStart     string        `json:"period_start"`
	PeriodEnd       string        `json:"period_end"`
	Lines           []InvoiceLine `json:"lines"`
	Total           float64       `json:"total"`
	AmountInWords   string        `json:"amount_in_words"`
	Status          string        `json:"status"`
}
