package technician

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/shared"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// TechnicianService summarizes workload and cost per technician and skill level
type TechnicianService struct{}

// NewTechnicianService creates a new technician performance service
func NewTechnicianService() *TechnicianService {
	return &TechnicianService{}
}

type workload struct {
	count     int
	hours     float64
	downtime  float64
	totalCost decimal.Decimal
	laborCost decimal.Decimal
}

func (w *workload) add(wo *entities.WorkOrder) {
	w.count++
	w.hours += wo.LaborHours
	w.downtime += wo.DowntimeHours
	w.totalCost = w.totalCost.Add(wo.TotalCost)
	w.laborCost = w.laborCost.Add(wo.LaborCost)
}

func indexTechnicians(technicians []*entities.Technician) map[string]*entities.Technician {
	index := make(map[string]*entities.Technician, len(technicians))
	for _, t := range technicians {
		index[t.ID] = t
	}
	return index
}

// TechnicianStats returns the workload of every technician with at least one
// order, ordered by name. Orders by unknown technicians are ignored.
// Efficiency is orders per labor hour.
func (s *TechnicianService) TechnicianStats(
	orders []*entities.WorkOrder,
	technicians []*entities.Technician,
) []dto.TechnicianStats {
	index := indexTechnicians(technicians)
	loads := make(map[string]*workload)
	for _, wo := range orders {
		if _, ok := index[wo.TechnicianID]; !ok {
			continue
		}
		w, ok := loads[wo.TechnicianID]
		if !ok {
			w = &workload{}
			loads[wo.TechnicianID] = w
		}
		w.add(wo)
	}

	rows := make([]dto.TechnicianStats, 0, len(loads))
	for id, w := range loads {
		t := index[id]
		rows = append(rows, dto.TechnicianStats{
			TechnicianID:   id,
			Name:           t.Name,
			SkillLevel:     t.SkillLevel,
			WorkOrderCount: w.count,
			LaborHours:     shared.Round(w.hours, 2),
			AvgHoursPerWO:  shared.Round(w.hours/float64(w.count), 2),
			TotalCost:      shared.Money(w.totalCost),
			AvgDowntime:    shared.Round(w.downtime/float64(w.count), 2),
			Efficiency:     shared.Round(shared.SafeDiv(float64(w.count), w.hours), 2),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].TechnicianID < rows[j].TechnicianID
	})
	return rows
}

// SkillLevelSummary aggregates orders per technician skill level, ordered by
// level. The average hourly rate covers every registered technician at that level.
func (s *TechnicianService) SkillLevelSummary(
	orders []*entities.WorkOrder,
	technicians []*entities.Technician,
) []dto.SkillLevelSummary {
	index := indexTechnicians(technicians)

	rates := make(map[string][]decimal.Decimal)
	for _, t := range technicians {
		rates[t.SkillLevel] = append(rates[t.SkillLevel], t.HourlyRate)
	}

	loads := make(map[string]*workload)
	for _, wo := range orders {
		t, ok := index[wo.TechnicianID]
		if !ok {
			continue
		}
		w, ok := loads[t.SkillLevel]
		if !ok {
			w = &workload{}
			loads[t.SkillLevel] = w
		}
		w.add(wo)
	}

	rows := make([]dto.SkillLevelSummary, 0, len(loads))
	for _, level := range shared.SortedKeys(loads) {
		w := loads[level]
		rows = append(rows, dto.SkillLevelSummary{
			SkillLevel:     level,
			WorkOrderCount: w.count,
			LaborHours:     shared.Round(w.hours, 2),
			TotalCost:      shared.Money(w.totalCost),
			LaborCost:      shared.Money(w.laborCost),
			AvgHourlyRate:  shared.Money(decimal.Avg(rates[level][0], rates[level][1:]...)),
			CostPerWO:      shared.Money(w.totalCost.Div(decimal.NewFromInt(int64(w.count)))),
		})
	}
	return rows
}

// Analyze builds the technician report
func (s *TechnicianService) Analyze(
	orders []*entities.WorkOrder,
	technicians []*entities.Technician,
) *dto.TechnicianReport {
	return &dto.TechnicianReport{
		Technicians: s.TechnicianStats(orders, technicians),
		SkillLevels: s.SkillLevelSummary(orders, technicians),
	}
}
