package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ukydev/garage-service/internal/models"
)

func (a *App) registerVehicle() {
	// The owner id is stored as given, without checking the customer
	// catalog; the booking flow is where ownership gets verified.
	customerID := a.promptInt("Enter customer ID: ")
	if a.eof {
		return
	}
	v := models.Vehicle{
		CustomerID: customerID,
		RegNo:      a.prompt("Enter registration number: "),
		Model:      a.prompt("Enter model: "),
		Color:      a.prompt("Enter color: "),
	}
	if a.eof {
		return
	}
	created, err := a.vehicles.Add(v)
	if err != nil {
		fmt.Fprintf(a.out, "Could not register vehicle: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Vehicle registered with ID: %d\n", created.ID)
}

func (a *App) viewVehicles() {
	list, err := a.vehicles.Load()
	if err != nil {
		fmt.Fprintf(a.out, "Could not load vehicles: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No vehicles found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCustID\tRegNo\tModel\tColor")
	for _, v := range list {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", v.ID, v.CustomerID, v.RegNo, v.Model, v.Color)
	}
	w.Flush()
}

func (a *App) updateVehicle() {
	id := a.promptInt("Enter vehicle ID to update: ")
	if a.eof {
		return
	}
	upd := models.VehicleUpdate{
		RegNo: a.promptOptional("Enter new registration number (leave blank to keep): "),
		Model: a.promptOptional("Enter new model (leave blank to keep): "),
		Color: a.promptOptional("Enter new color (leave blank to keep): "),
	}
	found, err := a.vehicles.Update(id, upd)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update vehicle: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Vehicle not found.")
		return
	}
	fmt.Fprintln(a.out, "Vehicle updated.")
}

func (a *App) deleteVehicle() {
	id := a.promptInt("Enter vehicle ID to delete: ")
	if a.eof {
		return
	}
	found, err := a.vehicles.Delete(id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not delete vehicle: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Vehicle not found.")
		return
	}
	fmt.Fprintln(a.out, "Vehicle deleted.")
}
