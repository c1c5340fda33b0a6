// Package cli implements the interactive console menu on top of the
// catalogs and the booking engine.
package cli

import (
	"bufio"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/booking"
	"github.com/ukydev/garage-service/internal/store"
)

// App is the interactive console application.
type App struct {
	in  *bufio.Reader
	out io.Writer
	eof bool

	customers *store.CustomerStore
	vehicles  *store.VehicleStore
	services  *store.ServiceStore
	discounts *store.DiscountStore
	history   *store.HistoryStore
	engine    *booking.Engine
}

// New returns an app reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, customers *store.CustomerStore, vehicles *store.VehicleStore, services *store.ServiceStore, discounts *store.DiscountStore, history *store.HistoryStore, engine *booking.Engine) *App {
	return &App{
		in:        bufio.NewReader(in),
		out:       out,
		customers: customers,
		vehicles:  vehicles,
		services:  services,
		discounts: discounts,
		history:   history,
		engine:    engine,
	}
}

// Run drives the main menu until the user exits or input ends.
func (a *App) Run() {
	for !a.eof {
		a.printMainMenu()
		switch opt := a.promptInt("Enter option: "); opt {
		case 1:
			a.addCustomer()
		case 2:
			a.viewCustomers()
		case 3:
			a.searchCustomer()
		case 4:
			a.registerVehicle()
		case 5:
			a.viewVehicles()
		case 6:
			a.bookService()
		case 7:
			a.viewServiceHistory()
		case 8:
			a.generateBill()
		case 9:
			a.discountsMenu()
		case 10:
			a.updateCustomer()
		case 11:
			a.deleteCustomer()
		case 12:
			a.updateVehicle()
		case 13:
			a.deleteVehicle()
		case 14:
			a.servicesMenu()
		case 0:
			a.exitFlow()
			return
		default:
			if !a.eof {
				fmt.Fprintln(a.out, "Invalid option.")
			}
		}
	}
	log.Debug("input closed, leaving menu")
}

func (a *App) printMainMenu() {
	fmt.Fprint(a.out, "\n--- Car Service Management ---\n"+
		"1. Add Customer\n"+
		"2. View Customers\n"+
		"3. Search Customer\n"+
		"4. Register Vehicle\n"+
		"5. View Vehicles\n"+
		"6. Book Service\n"+
		"7. View Service History\n"+
		"8. Generate Bill (for existing booking)\n"+
		"9. Discounts (manage)\n"+
		"10. Update Customer\n"+
		"11. Delete Customer\n"+
		"12. Update Vehicle\n"+
		"13. Delete Vehicle\n"+
		"14. Services (manage)\n"+
		"0. Exit (mark customer service completed)\n")
}

// exitFlow optionally closes out one customer's pending work before the
// program ends.
func (a *App) exitFlow() {
	id := a.promptInt("Before exit, enter customer ID to mark their service(s) as completed (or 0 to skip): ")
	if id > 0 {
		res, err := a.engine.CompleteCustomerServices(id)
		switch {
		case err != nil:
			fmt.Fprintf(a.out, "Could not complete services: %v\n", err)
		case res.Completed == 0:
			fmt.Fprintf(a.out, "No pending services found for customer %d.\n", id)
		default:
			fmt.Fprintf(a.out, "Marked all pending services for customer %d as Completed.\n", id)
			if res.VehiclesDeleted > 0 {
				fmt.Fprintf(a.out, "All vehicles for customer %d deleted.\n", id)
			} else {
				fmt.Fprintf(a.out, "No vehicles found for customer %d.\n", id)
			}
			if res.CustomerDeleted {
				fmt.Fprintf(a.out, "Customer %d deleted.\n", id)
			} else {
				fmt.Fprintf(a.out, "Customer %d not found.\n", id)
			}
		}
	}
	fmt.Fprintln(a.out, "Exiting...")
}
