package booking

import (
	log "github.com/sirupsen/logrus"
)

// CompletionResult summarizes the close-out of a customer's pending work.
type CompletionResult struct {
	Completed       int
	VehiclesDeleted int
	CustomerDeleted bool
}

// CompleteCustomerServices marks every Pending history entry for the
// customer as Completed. When at least one entry changed, the customer's
// vehicles and then the customer record are deleted as well: closing out
// a customer is coupled to them having had pending work. History is saved
// before any deletion, so a crash mid-flow leaves completed history but
// an intact customer.
func (e *Engine) CompleteCustomerServices(customerID int) (CompletionResult, error) {
	var res CompletionResult

	completed, err := e.history.CompletePending(customerID)
	if err != nil {
		return res, err
	}
	res.Completed = completed
	if completed == 0 {
		return res, nil
	}

	deleted, err := e.vehicles.DeleteByOwner(customerID)
	if err != nil {
		return res, err
	}
	res.VehiclesDeleted = deleted

	removed, err := e.customers.Delete(customerID)
	if err != nil {
		return res, err
	}
	res.CustomerDeleted = removed

	log.WithFields(log.Fields{
		"customer_id":      customerID,
		"completed":        res.Completed,
		"vehicles_deleted": res.VehiclesDeleted,
		"customer_deleted": res.CustomerDeleted,
	}).Info("customer services completed")
	return res, nil
}
