package tabular

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// Source yields the raw rows of a table: the header followed by the data
// rows. A source without the table returns ErrTableNotFound.
type Source interface {
	ReadTable(ctx context.Context, t Table) (header []string, rows [][]string, err error)
}

// Load reads and validates every table from the source into a dataset.
// Missing optional tables load as empty; a missing required table fails.
func Load(ctx context.Context, src Source) (*entities.Dataset, error) {
	ds := &entities.Dataset{}
	for _, t := range Tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		header, rows, err := src.ReadTable(ctx, t)
		if errors.Is(err, ErrTableNotFound) && !t.Required {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", t.Name, err)
		}
		if err := decodeTable(ds, t, header, rows); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", t.Name, err)
		}
	}
	return ds, nil
}

func decodeTable(ds *entities.Dataset, t Table, columns []string, rows [][]string) error {
	header, err := NewHeader(t, columns)
	if err != nil {
		return err
	}

	for i, values := range rows {
		rec, err := header.Record(i+1, values)
		if err != nil {
			return err
		}
		if err := decodeInto(ds, t, rec); err != nil {
			return err
		}
	}
	return nil
}

func decodeInto(ds *entities.Dataset, t Table, rec *Record) error {
	switch t.Name {
	case WorkOrders.Name:
		wo, err := decodeWorkOrder(rec)
		if err != nil {
			return err
		}
		ds.WorkOrders = append(ds.WorkOrders, wo)
	case SensorReadings.Name:
		r, err := decodeSensorReading(rec)
		if err != nil {
			return err
		}
		ds.SensorReadings = append(ds.SensorReadings, r)
	case Production.Name:
		p, err := decodeProduction(rec)
		if err != nil {
			return err
		}
		ds.Production = append(ds.Production, p)
	case Products.Name:
		p, err := decodeProduct(rec)
		if err != nil {
			return err
		}
		ds.Products = append(ds.Products, p)
	case Transactions.Name:
		tx, err := decodeTransaction(rec)
		if err != nil {
			return err
		}
		ds.Transactions = append(ds.Transactions, tx)
	case Vendors.Name:
		v, err := decodeVendor(rec)
		if err != nil {
			return err
		}
		ds.Vendors = append(ds.Vendors, v)
	case CostRecords.Name:
		c, err := decodeCostRecord(rec)
		if err != nil {
			return err
		}
		ds.CostRecords = append(ds.CostRecords, c)
	case BudgetLines.Name:
		b, err := decodeBudgetLine(rec)
		if err != nil {
			return err
		}
		ds.BudgetLines = append(ds.BudgetLines, b)
	case Technicians.Name:
		tech, err := decodeTechnician(rec)
		if err != nil {
			return err
		}
		ds.Technicians = append(ds.Technicians, tech)
	case Equipment.Name:
		e, err := decodeEquipment(rec)
		if err != nil {
			return err
		}
		ds.Equipment = append(ds.Equipment, e)
	default:
		return fmt.Errorf("unknown table %s", t.Name)
	}
	return nil
}
