package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/ledger"
)

func priced(id, dir string, kg, price string, at time.Time) *entity.Movement {
	m := mov(id, dir, "Pedro", 1, kg, "0", entity.StatusPaid, at)
	m.UnitPrice = d(price)
	return m
}

func TestWeightedAverageCost(t *testing.T) {
	eq(t, "12", ledger.WeightedAverageCost(d("100"), d("10"), d("50"), d("16")), "(100*10+50*16)/150")
	eq(t, "16", ledger.WeightedAverageCost(d("0"), d("0"), d("50"), d("16")), "sin stock previo")
	assert.True(t, ledger.WeightedAverageCost(d("0"), d("0"), d("0"), d("16")).IsZero(), "sin cantidad no divide")
}

func TestAverageCostPerKg_OrdenCronologico(t *testing.T) {
	// Más nuevo primero, como lo entrega el almacén.
	snap := []*entity.Movement{
		priced("4", entity.DirectionIn, "10", "24", base.Add(3*time.Hour)),
		priced("3", entity.DirectionOut, "40", "30", base.Add(2*time.Hour)),
		priced("2", entity.DirectionIn, "50", "16", base.Add(time.Hour)),
		priced("1", entity.DirectionIn, "100", "10", base),
	}
	// 100@10 + 50@16 = 12; egreso 40 kg no cambia el costo; 110@12 + 10@24 = 13.
	eq(t, "13", ledger.AverageCostPerKg(snap, ledger.Filter{}), "costo promedio")
}

func TestAverageCostPerKg_StockAgotadoReinicia(t *testing.T) {
	snap := []*entity.Movement{
		priced("1", entity.DirectionIn, "100", "10", base),
		priced("2", entity.DirectionOut, "100", "30", base.Add(time.Hour)),
		priced("3", entity.DirectionIn, "20", "15", base.Add(2*time.Hour)),
	}
	eq(t, "15", ledger.AverageCostPerKg(snap, ledger.Filter{}), "tras agotar stock cuenta solo la nueva entrada")
}

func TestAverageCostPerKg_Vacio(t *testing.T) {
	assert.True(t, ledger.AverageCostPerKg(nil, ledger.Filter{}).IsZero())
}
