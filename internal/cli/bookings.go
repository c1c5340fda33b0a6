package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ukydev/garage-service/internal/booking"
	"github.com/ukydev/garage-service/internal/flatfile"
)

// bookService walks the interactive booking flow: customer, vehicle,
// service selection loop, optional discount. Unresolvable service ids are
// rejected one at a time during selection; the engine re-checks every
// precondition before anything is written.
func (a *App) bookService() {
	if err := a.services.EnsureDefaults(); err != nil {
		fmt.Fprintf(a.out, "Could not seed services: %v\n", err)
		return
	}
	if err := a.discounts.EnsureDefaults(); err != nil {
		fmt.Fprintf(a.out, "Could not seed discounts: %v\n", err)
		return
	}

	customerID := a.promptInt("Enter Customer ID: ")
	if a.eof {
		return
	}
	if c, err := a.customers.FindByID(customerID); err != nil || c == nil {
		fmt.Fprintln(a.out, "Customer not found.")
		return
	}
	vehicleID := a.promptInt("Enter Vehicle ID: ")
	if a.eof {
		return
	}
	if v, err := a.vehicles.FindOwned(vehicleID, customerID); err != nil || v == nil {
		fmt.Fprintln(a.out, "Vehicle not found or not owned by customer.")
		return
	}

	var chosen []int
	subtotal := 0.0
	for {
		a.viewServices()
		id := a.promptInt("Select service number (0 to finish): ")
		if a.eof || id == 0 {
			break
		}
		item, err := a.services.FindByID(id)
		if err != nil || item == nil {
			fmt.Fprintln(a.out, "Invalid service id.")
			continue
		}
		chosen = append(chosen, id)
		subtotal += item.Price
	}
	if len(chosen) == 0 {
		fmt.Fprintln(a.out, "No services selected. Aborting.")
		return
	}
	fmt.Fprintf(a.out, "Subtotal: Rs.%s\n", flatfile.FormatFloat(subtotal))

	fmt.Fprintln(a.out, "Available discounts:")
	a.viewDiscounts()
	discountID := a.promptInt("Select discount id to apply (0 for none): ")
	if discountID > 0 {
		if d, err := a.discounts.FindByID(discountID); err != nil || d == nil {
			fmt.Fprintln(a.out, "Invalid discount id. No discount applied.")
			discountID = 0
		}
	}

	entry, err := a.engine.BookService(customerID, vehicleID, chosen, discountID)
	if err != nil {
		fmt.Fprintf(a.out, "Booking failed: %v\n", err)
		return
	}
	discountAmount := entry.Subtotal * (entry.DiscountPercent / 100)
	fmt.Fprintf(a.out, "Discount: %s%% -> -Rs.%.2f\n", flatfile.FormatFloat(entry.DiscountPercent), discountAmount)
	fmt.Fprintf(a.out, "Total: Rs.%.2f\n", entry.Total)
	fmt.Fprintf(a.out, "Booking saved with History ID: %d\n", entry.HistoryID)
}

func (a *App) viewServiceHistory() {
	list, err := a.history.Load()
	if err != nil {
		fmt.Fprintf(a.out, "Could not load history: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No service history found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HistoryID\tCustID\tVehID\tServices\tDateTime\tSubtotal\tDiscount%\tTotal\tStatus")
	for _, h := range list {
		ids := make([]string, len(h.ServiceIDs))
		for i, id := range h.ServiceIDs {
			ids[i] = flatfile.FormatInt(id)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			h.HistoryID, h.CustomerID, h.VehicleID,
			strings.Join(ids, ","), h.DateTime,
			flatfile.FormatFloat(h.Subtotal),
			flatfile.FormatFloat(h.DiscountPercent),
			flatfile.FormatFloat(h.Total),
			h.Status)
	}
	w.Flush()
}

func (a *App) generateBill() {
	id := a.promptInt("Enter History ID to generate bill: ")
	if a.eof {
		return
	}
	bill, err := a.engine.GenerateBill(id)
	if err != nil {
		if errors.Is(err, booking.ErrHistoryNotFound) {
			fmt.Fprintln(a.out, "History ID not found.")
		} else {
			fmt.Fprintf(a.out, "Could not generate bill: %v\n", err)
		}
		return
	}
	fmt.Fprintln(a.out, "\n--- BILL ---")
	fmt.Fprintf(a.out, "History ID: %d\n", bill.HistoryID)
	fmt.Fprintf(a.out, "Customer ID: %d\n", bill.CustomerID)
	fmt.Fprintf(a.out, "Vehicle ID: %d\n", bill.VehicleID)
	fmt.Fprintf(a.out, "Date: %s\n", bill.DateTime)
	fmt.Fprintln(a.out, "Services:")
	for _, line := range bill.Lines {
		fmt.Fprintf(a.out, " - %s : Rs.%s\n", line.Name, flatfile.FormatFloat(line.Price))
	}
	fmt.Fprintf(a.out, "Subtotal: Rs.%s\n", flatfile.FormatFloat(bill.Subtotal))
	fmt.Fprintf(a.out, "Discount: %s%%\n", flatfile.FormatFloat(bill.DiscountPercent))
	fmt.Fprintf(a.out, "Total: Rs.%s\n", flatfile.FormatFloat(bill.Total))
	fmt.Fprintf(a.out, "Status: %s\n", bill.Status)
}
