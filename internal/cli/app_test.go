package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/garage-service/internal/booking"
	"github.com/ukydev/garage-service/internal/config"
	"github.com/ukydev/garage-service/internal/store"
)

// newTestApp wires a full app against a scratch data directory and feeds
// it the given scripted input.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *config.Config) {
	t.Helper()
	cfg := config.ForDir(t.TempDir())
	customers := store.NewCustomerStore(cfg.CustomersFile)
	vehicles := store.NewVehicleStore(cfg.VehiclesFile)
	services := store.NewServiceStore(cfg.ServicesFile)
	discounts := store.NewDiscountStore(cfg.DiscountsFile)
	history := store.NewHistoryStore(cfg.HistoryFile)
	require.NoError(t, services.EnsureDefaults())
	require.NoError(t, discounts.EnsureDefaults())
	engine := booking.NewEngine(customers, vehicles, services, discounts, history)

	var out bytes.Buffer
	app := New(strings.NewReader(input), &out, customers, vehicles, services, discounts, history, engine)
	return app, &out, cfg
}

func TestAddCustomerFlow(t *testing.T) {
	input := "1\nAsha\n9876543210\nasha@example.com\n0\n0\n"
	app, out, cfg := newTestApp(t, input)
	app.Run()

	assert.Contains(t, out.String(), "Customer added with ID: 1")

	c, err := store.NewCustomerStore(cfg.CustomersFile).FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Asha", c.Name)
}

func TestBookServiceFlow(t *testing.T) {
	// Add customer, register vehicle, book services 1 and 2 with no
	// discount, then exit without closing anyone out.
	input := strings.Join([]string{
		"1", "Asha", "9876543210", "asha@example.com",
		"4", "1", "KA01AB1234", "Swift", "Red",
		"6", "1", "1", "1", "2", "0", "0",
		"0", "0",
	}, "\n") + "\n"
	app, out, cfg := newTestApp(t, input)
	app.Run()

	s := out.String()
	assert.Contains(t, s, "Subtotal: Rs.2000")
	assert.Contains(t, s, "Booking saved with History ID: 1")

	entry, err := store.NewHistoryStore(cfg.HistoryFile).FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, []int{1, 2}, entry.ServiceIDs)
	assert.Equal(t, 2000.0, entry.Total)
}

func TestBookServiceRejectsInvalidServiceID(t *testing.T) {
	input := strings.Join([]string{
		"1", "Asha", "p", "e",
		"4", "1", "KA01AB1234", "Swift", "Red",
		"6", "1", "1", "42", "1", "0", "0",
		"0", "0",
	}, "\n") + "\n"
	app, out, _ := newTestApp(t, input)
	app.Run()

	s := out.String()
	assert.Contains(t, s, "Invalid service id.")
	assert.Contains(t, s, "Booking saved with History ID: 1")
}

func TestBookServiceAbortsWithoutSelection(t *testing.T) {
	input := strings.Join([]string{
		"1", "Asha", "p", "e",
		"4", "1", "KA01AB1234", "Swift", "Red",
		"6", "1", "1", "0",
		"0", "0",
	}, "\n") + "\n"
	app, out, cfg := newTestApp(t, input)
	app.Run()

	assert.Contains(t, out.String(), "No services selected. Aborting.")

	id, err := store.NewHistoryStore(cfg.HistoryFile).NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestExitFlowCompletesCustomer(t *testing.T) {
	input := strings.Join([]string{
		"1", "Asha", "p", "e",
		"4", "1", "KA01AB1234", "Swift", "Red",
		"6", "1", "1", "1", "0", "0",
		"0", "1",
	}, "\n") + "\n"
	app, out, cfg := newTestApp(t, input)
	app.Run()

	s := out.String()
	assert.Contains(t, s, "Marked all pending services for customer 1 as Completed.")
	assert.Contains(t, s, "All vehicles for customer 1 deleted.")
	assert.Contains(t, s, "Customer 1 deleted.")

	c, err := store.NewCustomerStore(cfg.CustomersFile).FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestUpdateServiceBlankKeepsPrice(t *testing.T) {
	// Services menu -> update id 1, new name, blank price.
	input := "14\n3\n1\nPremium Oil Change\n\n0\n0\n"
	app, out, cfg := newTestApp(t, input)
	app.Run()

	assert.Contains(t, out.String(), "Service updated.")

	item, err := store.NewServiceStore(cfg.ServicesFile).FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Premium Oil Change", item.Name)
	assert.Equal(t, 1200.0, item.Price)
}

func TestPromptIntReprompts(t *testing.T) {
	app, out, _ := newTestApp(t, "abc\n7\n")
	n := app.promptInt("id: ")
	assert.Equal(t, 7, n)
	assert.Contains(t, out.String(), "Invalid number.")
}

func TestPromptOptionalPrice(t *testing.T) {
	app, _, _ := newTestApp(t, "\n0\n2.5\n")

	assert.Nil(t, app.promptOptionalPrice("p: "), "blank keeps the stored value")

	zero := app.promptOptionalPrice("p: ")
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, *zero, "an explicit zero is a real value")

	v := app.promptOptionalPrice("p: ")
	require.NotNil(t, v)
	assert.Equal(t, 2.5, *v)
}

func TestRunStopsOnClosedInput(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.Run() // must return rather than loop
	assert.True(t, app.eof)
}
