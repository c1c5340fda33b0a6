package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ukydev/garage-service/internal/flatfile"
	"github.com/ukydev/garage-service/internal/models"
)

func (a *App) servicesMenu() {
	fmt.Fprint(a.out, "\n--- Services Menu ---\n1. View Services\n2. Add Service\n3. Update Service\n4. Delete Service\n0. Back\n")
	switch a.promptInt("Enter: ") {
	case 1:
		a.viewServices()
	case 2:
		a.addService()
	case 3:
		a.updateService()
	case 4:
		a.deleteService()
	}
}

func (a *App) viewServices() {
	if err := a.services.EnsureDefaults(); err != nil {
		fmt.Fprintf(a.out, "Could not seed services: %v\n", err)
		return
	}
	list, err := a.services.Load()
	if err != nil {
		fmt.Fprintf(a.out, "Could not load services: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "--- Available Services ---")
	for _, s := range list {
		fmt.Fprintf(a.out, "%d. %s - Rs.%s\n", s.ID, s.Name, flatfile.FormatFloat(s.Price))
	}
}

func (a *App) addService() {
	item := models.ServiceItem{Name: a.prompt("Enter service name: ")}
	item.Price = a.promptPrice("Enter price: ")
	if a.eof {
		return
	}
	created, err := a.services.Add(item)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add service: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Service added with ID: %d\n", created.ID)
}

func (a *App) updateService() {
	id := a.promptInt("Enter service ID to update: ")
	if a.eof {
		return
	}
	upd := models.ServiceUpdate{
		Name:  a.promptOptional("Enter new name (leave blank to keep): "),
		Price: a.promptOptionalPrice("Enter new price (leave blank to keep): "),
	}
	found, err := a.services.Update(id, upd)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update service: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Service not found.")
		return
	}
	fmt.Fprintln(a.out, "Service updated.")
}

func (a *App) deleteService() {
	id := a.promptInt("Enter service ID to delete: ")
	if a.eof {
		return
	}
	found, err := a.services.Delete(id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not delete service: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Service not found.")
		return
	}
	fmt.Fprintln(a.out, "Service deleted.")
}

func (a *App) discountsMenu() {
	fmt.Fprint(a.out, "\n--- Discounts Menu ---\n1. View Discounts\n2. Add Discount\n3. Update Discount\n4. Delete Discount\n0. Back\n")
	switch a.promptInt("Enter: ") {
	case 1:
		a.viewDiscounts()
	case 2:
		a.addDiscount()
	case 3:
		a.updateDiscount()
	case 4:
		a.deleteDiscount()
	}
}

func (a *App) viewDiscounts() {
	if err := a.discounts.EnsureDefaults(); err != nil {
		fmt.Fprintf(a.out, "Could not seed discounts: %v\n", err)
		return
	}
	list, err := a.discounts.Load()
	if err != nil {
		fmt.Fprintf(a.out, "Could not load discounts: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No discounts found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPercent\tNote")
	for _, d := range list {
		fmt.Fprintf(w, "%d\t%s\t%s%%\t%s\n", d.ID, d.Name, flatfile.FormatFloat(d.Percent), d.Note)
	}
	w.Flush()
}

func (a *App) addDiscount() {
	d := models.Discount{Name: a.prompt("Enter discount name: ")}
	d.Percent = a.promptPrice("Enter percent (e.g., 10 for 10%): ")
	d.Note = a.prompt("Enter note: ")
	if a.eof {
		return
	}
	created, err := a.discounts.Add(d)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add discount: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Discount added with ID: %d\n", created.ID)
}

func (a *App) updateDiscount() {
	id := a.promptInt("Enter discount ID to update: ")
	if a.eof {
		return
	}
	upd := models.DiscountUpdate{
		Name:    a.promptOptional("Enter new name (leave blank to keep): "),
		Percent: a.promptOptionalPrice("Enter new percent (leave blank to keep): "),
		Note:    a.promptOptional("Enter new note (leave blank to keep): "),
	}
	found, err := a.discounts.Update(id, upd)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update discount: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Discount not found.")
		return
	}
	fmt.Fprintln(a.out, "Discount updated.")
}

func (a *App) deleteDiscount() {
	id := a.promptInt("Enter discount ID to delete: ")
	if a.eof {
		return
	}
	found, err := a.discounts.Delete(id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not delete discount: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Discount not found.")
		return
	}
	fmt.Fprintln(a.out, "Discount deleted.")
}
