package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ukydev/garage-service/internal/models"
)

func (a *App) addCustomer() {
	c := models.Customer{
		Name:  a.prompt("Enter name: "),
		Phone: a.prompt("Enter phone: "),
		Email: a.prompt("Enter email: "),
	}
	if a.eof {
		return
	}
	created, err := a.customers.Add(c)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add customer: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Customer added with ID: %d\n", created.ID)
}

func (a *App) viewCustomers() {
	list, err := a.customers.Load()
	if err != nil {
		fmt.Fprintf(a.out, "Could not load customers: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No customers found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPhone\tEmail")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email)
	}
	w.Flush()
}

func (a *App) searchCustomer() {
	id := a.promptInt("Enter customer ID to search: ")
	if a.eof {
		return
	}
	c, err := a.customers.FindByID(id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not search customers: %v\n", err)
		return
	}
	if c == nil {
		fmt.Fprintln(a.out, "Customer not found.")
		return
	}
	fmt.Fprintf(a.out, "Found: ID=%d, Name=%s, Phone=%s, Email=%s\n", c.ID, c.Name, c.Phone, c.Email)
}

func (a *App) updateCustomer() {
	id := a.promptInt("Enter customer ID to update: ")
	if a.eof {
		return
	}
	upd := models.CustomerUpdate{
		Name:  a.promptOptional("Enter new name (leave blank to keep): "),
		Phone: a.promptOptional("Enter new phone (leave blank to keep): "),
		Email: a.promptOptional("Enter new email (leave blank to keep): "),
	}
	found, err := a.customers.Update(id, upd)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update customer: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Customer not found.")
		return
	}
	fmt.Fprintln(a.out, "Customer updated.")
}

func (a *App) deleteCustomer() {
	id := a.promptInt("Enter customer ID to delete: ")
	if a.eof {
		return
	}
	found, err := a.customers.Delete(id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not delete customer: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(a.out, "Customer not found.")
		return
	}
	fmt.Fprintln(a.out, "Customer deleted.")
}
