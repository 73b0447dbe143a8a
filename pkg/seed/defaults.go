// Package seed provides the sample dataset the dashboard ships with and
// loaders for CSV, XLSX and YAML seed files.
package seed

import (
	"time"

	"cropplan/entities"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func CropPlans() []entities.CropPlan {
	return []entities.CropPlan{
		{ID: "1", Name: "Soja", Variety: "BMX Potência", PlannedAreaHa: 120, ExpectedYield: 62, CostPerHectare: 3800,
			PlantingDate: date("2025-10-15"), HarvestDate: date("2026-02-10"), Status: entities.StatusPlanning,
			Field: "Talhão 1, 2 e 3", CycleDays: 118, Notes: "Soja principal, cultivar de maior rentabilidade na última safra"},
		{ID: "2", Name: "Milho", Variety: "DKB 390", PlannedAreaHa: 80, ExpectedYield: 145, CostPerHectare: 4200,
			PlantingDate: date("2026-02-20"), HarvestDate: date("2026-06-25"), Status: entities.StatusPlanning,
			Field: "Talhão 2 e 4", CycleDays: 125, Notes: "Milho safrinha após colheita da soja"},
		{ID: "3", Name: "Algodão", Variety: "FM 944", PlannedAreaHa: 50, ExpectedYield: 320, CostPerHectare: 6500,
			PlantingDate: date("2025-12-05"), HarvestDate: date("2026-05-10"), Status: entities.StatusPlanning,
			Field: "Talhão 5", CycleDays: 156, Notes: "Algodão em área separada para evitar contaminação"},
		{ID: "4", Name: "Soja", Variety: "Desafio 8473", PlannedAreaHa: 100, ExpectedYield: 58, CostPerHectare: 3600,
			PlantingDate: date("2024-10-20"), HarvestDate: date("2025-02-15"), Status: entities.StatusActive,
			Field: "Talhão 1 e 3", CycleDays: 118, Notes: "Safra atual em desenvolvimento"},
		{ID: "5", Name: "Trigo", Variety: "TBIO Audaz", PlannedAreaHa: 40, ExpectedYield: 50, CostPerHectare: 2800,
			PlantingDate: date("2025-05-10"), HarvestDate: date("2025-09-15"), Status: entities.StatusPlanning,
			Field: "Talhão 4", CycleDays: 128, Notes: "Plantio de inverno para rotação de culturas"},
	}
}

func History() []entities.HistoryRecord {
	return []entities.HistoryRecord{
		{ID: "1", FieldID: "field1", FieldName: "Talhão 1", CropName: "Soja", Variety: "BMX Potência", Season: "2023/2024",
			YieldPerHectare: 62, TotalYield: 2480, PlantingDate: date("2023-10-10"), HarvestDate: date("2024-02-05"),
			Notes: "Boa produtividade mesmo com período seco em janeiro"},
		{ID: "2", FieldID: "field1", FieldName: "Talhão 1", CropName: "Milho", Variety: "DKB 390", Season: "2023/2024",
			YieldPerHectare: 140, TotalYield: 5600, PlantingDate: date("2024-02-15"), HarvestDate: date("2024-06-20"),
			Notes: "Safrinha com bons resultados"},
		{ID: "3", FieldID: "field2", FieldName: "Talhão 2", CropName: "Soja", Variety: "Desafio 8473", Season: "2023/2024",
			YieldPerHectare: 58, TotalYield: 1740, PlantingDate: date("2023-10-15"), HarvestDate: date("2024-02-10"),
			Notes: "Produtividade afetada por período seco"},
		{ID: "4", FieldID: "field2", FieldName: "Talhão 2", CropName: "Soja", Variety: "BMX Potência", Season: "2022/2023",
			YieldPerHectare: 65, TotalYield: 1950, PlantingDate: date("2022-10-12"), HarvestDate: date("2023-02-08"),
			Notes: "Excelente produtividade"},
		{ID: "5", FieldID: "field2", FieldName: "Talhão 2", CropName: "Milho", Variety: "DKB 390", Season: "2022/2023",
			YieldPerHectare: 135, TotalYield: 4050, PlantingDate: date("2023-02-20"), HarvestDate: date("2023-06-25"),
			Notes: "Boa produtividade na safrinha"},
	}
}

func Profiles() []entities.CropSimulationProfile {
	return []entities.CropSimulationProfile{
		{CropName: "Soja", CostPerHectare: 3800, ExpectedYield: 62, CurrentPrice: 165, CycleDays: 120},
		{CropName: "Milho", CostPerHectare: 4200, ExpectedYield: 145, CurrentPrice: 75, CycleDays: 125},
		{CropName: "Algodão", CostPerHectare: 6500, ExpectedYield: 320, CurrentPrice: 198, CycleDays: 160},
		{CropName: "Trigo", CostPerHectare: 2800, ExpectedYield: 50, CurrentPrice: 90, CycleDays: 130},
		{CropName: "Feijão", CostPerHectare: 4500, ExpectedYield: 30, CurrentPrice: 280, CycleDays: 90},
	}
}

func square(lat, lng, dLat, dLng float64) []entities.LatLng {
	return []entities.LatLng{
		{Lat: lat, Lng: lng},
		{Lat: lat, Lng: lng + dLng},
		{Lat: lat - dLat, Lng: lng + dLng},
		{Lat: lat - dLat, Lng: lng},
	}
}

func Plots() []entities.Plot {
	return []entities.Plot{
		{ID: "1", Name: "Talhão 1", AreaHa: 50, Crop: "Soja", Variety: "BMX Potência", Status: entities.PlotPlanting,
			Coordinates: square(-13.002, -55.995, 0.005, 0.010), Color: "#48BB78"},
		{ID: "2", Name: "Talhão 2", AreaHa: 30, Crop: "Milho", Variety: "DKB 390", Status: entities.PlotHarvest,
			Coordinates: square(-13.009, -55.995, 0.005, 0.010), Color: "#ED8936"},
		{ID: "3", Name: "Talhão 3", AreaHa: 45, Crop: "Algodão", Variety: "FM 944", Status: entities.PlotGroundSpray,
			Coordinates: square(-13.002, -55.983, 0.008, 0.008), Color: "#4299E1"},
	}
}

// RainRecords returns the sample rain log dated in year.
func RainRecords(year int) []entities.RainRecord {
	d := func(month time.Month, day int) time.Time { return time.Date(year, month, day, 0, 0, 0, 0, time.UTC) }
	return []entities.RainRecord{
		{ID: "1", Date: d(4, 15), AmountMM: 12, Location: "Sede", Notes: "Chuva moderada durante a tarde", Technician: "Carlos Silva"},
		{ID: "2", Date: d(4, 10), AmountMM: 8, Location: "Talhão 2", Notes: "Chuva leve pela manhã", Technician: "Carlos Silva"},
		{ID: "3", Date: d(4, 5), AmountMM: 25, Location: "Sede", Notes: "Chuva forte à noite", Technician: "Ana Martins"},
		{ID: "4", Date: d(3, 28), AmountMM: 15, Location: "Talhão 1", Notes: "Chuva moderada durante o dia todo", Technician: "Carlos Silva"},
		{ID: "5", Date: d(3, 22), AmountMM: 5, Location: "Sede", Notes: "Chuva fraca", Technician: "Ana Martins"},
		{ID: "6", Date: d(3, 15), AmountMM: 18, Location: "Talhão 3", Notes: "Chuva moderada a forte", Technician: "Carlos Silva"},
		{ID: "7", Date: d(3, 10), AmountMM: 30, Location: "Sede", Notes: "Tempestade", Technician: "João Pereira"},
		{ID: "8", Date: d(3, 5), AmountMM: 7, Location: "Talhão 2", Notes: "Chuva fraca", Technician: "Ana Martins"},
		{ID: "9", Date: d(2, 28), AmountMM: 22, Location: "Sede", Notes: "Chuva forte", Technician: "Carlos Silva"},
		{ID: "10", Date: d(2, 20), AmountMM: 13, Location: "Talhão 1", Notes: "Chuva moderada", Technician: "João Pereira"},
	}
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func Machines() []entities.Machine {
	return []entities.Machine{
		{ID: "1", Name: "Trator John Deere", Model: "8R 310", Type: entities.MachineTractor, Code: "TR-JD-01",
			HoursUsed: 2450, Status: entities.MachineOperational, NextMaintenance: datePtr("2025-04-20"), CostPerHour: 180,
			PurchaseDate: date("2023-05-15"), LastMaintenanceDate: datePtr("2025-02-10"),
			Implements: []string{"IL-AR-01", "IL-PL-02"}, Notes: "Trator principal para operações pesadas"},
		{ID: "2", Name: "Colheitadeira Case", Model: "IH 8250", Type: entities.MachineHarvester, Code: "CH-CS-01",
			HoursUsed: 1850, Status: entities.MachineInService, NextMaintenance: datePtr("2025-04-10"), CostPerHour: 250,
			PurchaseDate: date("2022-08-22"), LastMaintenanceDate: datePtr("2025-01-05"),
			Implements: []string{}, Notes: "Revisão geral necessária antes da safra"},
		{ID: "3", Name: "Pulverizador Jacto", Model: "Uniport 3030", Type: entities.MachineSprayer, Code: "PL-JC-01",
			HoursUsed: 980, Status: entities.MachineBroken, CostPerHour: 120,
			PurchaseDate: date("2023-11-10"), LastMaintenanceDate: datePtr("2025-03-01"),
			Implements: []string{}, Notes: "Bomba com problema, peça em falta para substituição"},
		{ID: "4", Name: "Avião Agrícola Ipanema", Model: "EMB-202A", Type: entities.MachinePlane, Code: "AV-EM-01",
			HoursUsed: 450, Status: entities.MachineOperational, NextMaintenance: datePtr("2025-05-15"), CostPerHour: 850,
			PurchaseDate: date("2024-01-10"), Implements: []string{}, Notes: "Contrato com empresa terceirizada"},
		{ID: "5", Name: "Arado Reversível", Model: "Baldan ASPC", Type: entities.MachineImplement, Code: "IL-AR-01",
			HoursUsed: 520, Status: entities.MachineOperational, PurchaseDate: date("2023-08-15"),
			Notes: "Utilizado com o Trator John Deere"},
		{ID: "6", Name: "Plantadeira", Model: "John Deere DB120", Type: entities.MachineImplement, Code: "IL-PL-02",
			HoursUsed: 350, Status: entities.MachineOperational, PurchaseDate: date("2023-06-20"),
			Notes: "Plantadeira de 36 linhas"},
	}
}

func Maintenance() []entities.MaintenanceRecord {
	oilChange := []entities.MaintenancePart{
		{Name: "Óleo 15W40", Quantity: 20, UnitCost: 45},
		{Name: "Filtro de óleo", Quantity: 1, UnitCost: 180},
		{Name: "Filtro de combustível", Quantity: 2, UnitCost: 120},
	}
	return []entities.MaintenanceRecord{
		{ID: "m1", MachineID: "1", Date: date("2025-04-18"), Type: entities.MaintenancePreventive,
			Description: "Troca de óleo e filtros", Cost: 1200, Technician: "João Silva", Parts: oilChange},
		{ID: "m2", MachineID: "2", Date: date("2025-04-10"), Type: entities.MaintenanceCorrective,
			Description: "Revisão geral do sistema hidráulico", Cost: 8500, Technician: "Equipe Case",
			Parts: []entities.MaintenancePart{
				{Name: "Bomba hidráulica", Quantity: 1, UnitCost: 6500},
				{Name: "Mangueiras", Quantity: 4, UnitCost: 250},
				{Name: "Fluido hidráulico", Quantity: 10, UnitCost: 75},
			}},
		{ID: "m3", MachineID: "3", Date: date("2025-04-05"), Type: entities.MaintenanceCorrective,
			Description: "Reparo na bomba de produto", Cost: 3200, Technician: "Assistência Jacto",
			Parts: []entities.MaintenancePart{
				{Name: "Bomba completa", Quantity: 1, UnitCost: 2800},
				{Name: "Kit de vedação", Quantity: 1, UnitCost: 400},
			}},
		{ID: "m4", MachineID: "1", Date: date("2025-02-10"), Type: entities.MaintenanceRegular,
			Description: "Troca de óleo e filtros", Cost: 1200, Technician: "João Silva", Parts: oilChange, Completed: true},
	}
}
