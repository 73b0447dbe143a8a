package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropplan/entities"
)

func sampleFleet() []entities.Machine {
	return []entities.Machine{
		{ID: "1", Name: "Trator John Deere", Model: "8R 310", Type: entities.MachineTractor, Code: "TR-JD-01", HoursUsed: 2450, Status: entities.MachineOperational, CostPerHour: 180},
		{ID: "2", Name: "Colheitadeira Case", Model: "IH 8250", Type: entities.MachineHarvester, Code: "CH-CS-01", HoursUsed: 1850, Status: entities.MachineInService, CostPerHour: 250},
		{ID: "3", Name: "Pulverizador Jacto", Model: "Uniport 3030", Type: entities.MachineSprayer, Code: "PL-JC-01", HoursUsed: 980, Status: entities.MachineBroken, CostPerHour: 120},
		{ID: "5", Name: "Arado Reversível", Model: "Baldan ASPC", Type: entities.MachineImplement, Code: "IL-AR-01", HoursUsed: 0, Status: entities.MachineOperational},
	}
}

func date(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func sampleMaintenance() []entities.MaintenanceRecord {
	return []entities.MaintenanceRecord{
		{ID: "m1", MachineID: "1", Date: date("2025-04-18"), Type: entities.MaintenancePreventive, Description: "Troca de óleo", Cost: 1200},
		{ID: "m2", MachineID: "2", Date: date("2025-04-10"), Type: entities.MaintenanceCorrective, Description: "Hidráulico", Cost: 8500},
		{ID: "m3", MachineID: "3", Date: date("2025-04-05"), Type: entities.MaintenanceCorrective, Description: "Bomba", Cost: 3200},
		{ID: "m4", MachineID: "1", Date: date("2025-02-10"), Type: entities.MaintenanceRegular, Description: "Troca de óleo", Cost: 1200, Completed: true},
	}
}

func TestMachineCost(t *testing.T) {
	c := MachineCost(sampleFleet()[0], sampleMaintenance())
	assert.Equal(t, 2, c.Records)
	assert.True(t, c.TotalMaintenance.Equal(dec(2400)), c.TotalMaintenance.String())
	require.True(t, c.CostPerHour.Valid)
	assert.Equal(t, "0.98", c.CostPerHour.Decimal.String())
	assert.Empty(t, c.Warnings)

	c = MachineCost(sampleFleet()[1], sampleMaintenance())
	assert.Equal(t, "4.59", c.CostPerHour.Decimal.String())
}

func TestMachineCostWithoutHours(t *testing.T) {
	m := sampleFleet()[3]
	c := MachineCost(m, append(sampleMaintenance(), entities.MaintenanceRecord{MachineID: m.ID, Cost: 300}))
	assert.True(t, c.TotalMaintenance.Equal(dec(300)))
	assert.False(t, c.CostPerHour.Valid)
	require.Len(t, c.Warnings, 1)
	assert.Equal(t, WarnNoEngineHours, c.Warnings[0].Code)
}

func TestFilterMachines(t *testing.T) {
	all, err := FilterMachines(sampleFleet(), "all")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	tractors, err := FilterMachines(sampleFleet(), "Tractor")
	require.NoError(t, err)
	require.Len(t, tractors, 1)
	assert.Equal(t, "TR-JD-01", tractors[0].Code)

	_, err = FilterMachines(sampleFleet(), "boat")
	assert.True(t, IsValidation(err))
}

func TestValidateMachine(t *testing.T) {
	ok := sampleFleet()[0]
	assert.NoError(t, ValidateMachine(ok))

	for name, mut := range map[string]func(*entities.Machine){
		"name":   func(m *entities.Machine) { m.Name = " " },
		"model":  func(m *entities.Machine) { m.Model = "" },
		"code":   func(m *entities.Machine) { m.Code = "" },
		"type":   func(m *entities.Machine) { m.Type = "boat" },
		"status": func(m *entities.Machine) { m.Status = "" },
		"hours":  func(m *entities.Machine) { m.HoursUsed = -1 },
		"cost":   func(m *entities.Machine) { m.CostPerHour = math.NaN() },
	} {
		m := ok
		mut(&m)
		assert.True(t, IsValidation(ValidateMachine(m)), name)
	}
}

func TestValidateMaintenance(t *testing.T) {
	r := sampleMaintenance()[0]
	assert.NoError(t, ValidateMaintenance(r))

	bad := r
	bad.Description = ""
	assert.True(t, IsValidation(ValidateMaintenance(bad)))
	bad = r
	bad.MachineID = ""
	assert.True(t, IsValidation(ValidateMaintenance(bad)))
	bad = r
	bad.Parts = []entities.MaintenancePart{{Name: "Filtro", Quantity: 1, UnitCost: math.Inf(1)}}
	assert.True(t, IsValidation(ValidateMaintenance(bad)))
}

func TestPendingMaintenanceEarliestFirst(t *testing.T) {
	got := PendingMaintenance(sampleMaintenance())
	require.Len(t, got, 3)
	assert.Equal(t, []string{"m3", "m2", "m1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSummarizeFleet(t *testing.T) {
	s := SummarizeFleet(sampleFleet(), sampleMaintenance())
	assert.Equal(t, 4, s.Machines)
	assert.Equal(t, 2, s.Operational)
	assert.True(t, s.HourlyCost.Equal(dec(550)), s.HourlyCost.String())
	assert.True(t, s.MaintenanceCost.Equal(dec(14100)), s.MaintenanceCost.String())
	assert.Equal(t, 3, s.Pending)
	assert.Equal(t, 1, s.ByType[entities.MachineTractor])
	assert.Equal(t, 1, s.ByType[entities.MachineImplement])
}

func TestProperty_MachineCostPerHourNeverUndefinedWithHours(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("positive hours always give a cost per hour", prop.ForAll(
		func(hours float64, costs []float64) bool {
			m := entities.Machine{ID: "x", HoursUsed: hours}
			recs := make([]entities.MaintenanceRecord, len(costs))
			for i, c := range costs {
				recs[i] = entities.MaintenanceRecord{MachineID: "x", Cost: c}
			}
			c := MachineCost(m, recs)
			return c.CostPerHour.Valid && c.Records == len(costs) && !c.CostPerHour.Decimal.IsNegative()
		},
		gen.Float64Range(0.5, 10000),
		gen.SliceOf(gen.Float64Range(0, 50000)),
	))

	properties.TestingRun(t)
}
