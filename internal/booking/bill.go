package booking

// BillLine is one itemized service on a bill, priced from the current
// catalog.
type BillLine struct {
	ServiceID int
	Name      string
	Price     float64
}

// Bill is the structured view of a stored booking. Subtotal, discount and
// total come frozen from the history entry; only the line items are
// re-resolved against the current service catalog.
type Bill struct {
	HistoryID       int
	CustomerID      int
	VehicleID       int
	DateTime        string
	Lines           []BillLine
	Subtotal        float64
	DiscountPercent float64
	Total           float64
	Status          string
}

// GenerateBill builds a bill from the history entry with the given id.
// Service ids that no longer resolve (deleted since booking) are omitted
// from the itemization; the stored totals are unaffected.
func (e *Engine) GenerateBill(historyID int) (*Bill, error) {
	entry, err := e.history.FindByID(historyID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrHistoryNotFound
	}

	bill := &Bill{
		HistoryID:       entry.HistoryID,
		CustomerID:      entry.CustomerID,
		VehicleID:       entry.VehicleID,
		DateTime:        entry.DateTime,
		Subtotal:        entry.Subtotal,
		DiscountPercent: entry.DiscountPercent,
		Total:           entry.Total,
		Status:          string(entry.Status),
	}
	for _, id := range entry.ServiceIDs {
		item, err := e.services.FindByID(id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		bill.Lines = append(bill.Lines, BillLine{ServiceID: item.ID, Name: item.Name, Price: item.Price})
	}
	return bill, nil
}
