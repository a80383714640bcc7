// Package cli implementa el comando cueros: consultas de saldos desde la terminal.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	engine "github.com/jhoicas/cueros-api/internal/domain/ledger"
	"github.com/jhoicas/cueros-api/internal/infrastructure/storage"
	"github.com/jhoicas/cueros-api/pkg/config"
)

// Register registra los subcomandos.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "ledger")
	c.Register(&balanceCmd{}, "ledger")
	c.Register(&statementCmd{}, "ledger")
	c.Register(&rollupCmd{}, "ledger")
}

var rawOutput = flag.Bool("raw", false, "Imprimir markdown sin formatear")

// Out destino de la salida; los tests lo reemplazan.
var Out io.Writer = os.Stdout

// openLedger lee la configuración y abre el almacenamiento.
func openLedger(ctx context.Context) (*ledger.LedgerUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	repos, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewLedgerUseCase(repos.Movements, repos.Payments), closeStore, nil
}

func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(Out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(Out, out)
			return
		}
	}
	fmt.Fprint(Out, md)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// ── summary ───────────────────────────────────────────────────────────────────

type summaryCmd struct {
	filter dto.MovementFilterRequest
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "stock y caja esperada" }
func (*summaryCmd) Usage() string {
	return `cueros summary [-status PAGADO|IMPAGO] [-product <p>] [-counterparty <nombre>]

  Muestra stock en unidades y peso, montos impagos y caja esperada.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter.PaymentStatus, "status", "", "Filtrar por estado de pago")
	f.StringVar(&c.filter.Product, "product", "", "Filtrar por producto")
	f.StringVar(&c.filter.Counterparty, "counterparty", "", "Filtrar por contraparte")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	uc, closeStore, err := openLedger(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeStore()
	s, err := uc.Summary(ctx, c.filter)
	if err != nil {
		return fail(err)
	}
	printMarkdown(SummaryMarkdown(s, c.filter))
	return subcommands.ExitSuccess
}

// ── balance ───────────────────────────────────────────────────────────────────

type balanceCmd struct{}

func (*balanceCmd) Name() string           { return "balance" }
func (*balanceCmd) Synopsis() string       { return "saldo de una contraparte" }
func (*balanceCmd) SetFlags(*flag.FlagSet) {}
func (*balanceCmd) Usage() string {
	return `cueros balance <nombre>

  Muestra comprado, vendido, impagos, saldo a cuenta y saldo final.
`
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	uc, closeStore, err := openLedger(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeStore()
	b, err := uc.EntityBalance(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(BalanceMarkdown(b))
	return subcommands.ExitSuccess
}

// ── statement ─────────────────────────────────────────────────────────────────

type statementCmd struct{}

func (*statementCmd) Name() string           { return "statement" }
func (*statementCmd) Synopsis() string       { return "estado de cuenta de una contraparte" }
func (*statementCmd) SetFlags(*flag.FlagSet) {}
func (*statementCmd) Usage() string {
	return `cueros statement <nombre>

  Lista ventas, compras y pagos a cuenta, más nuevo primero, con balance acumulado.
`
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	uc, closeStore, err := openLedger(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeStore()
	st, err := uc.BuildStatement(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(StatementMarkdown(st))
	return subcommands.ExitSuccess
}

// ── rollup ────────────────────────────────────────────────────────────────────

type rollupCmd struct{}

func (*rollupCmd) Name() string           { return "rollup" }
func (*rollupCmd) Synopsis() string       { return "saldos de todas las contrapartes" }
func (*rollupCmd) SetFlags(*flag.FlagSet) {}
func (*rollupCmd) Usage() string {
	return `cueros rollup

  Una fila por contraparte, mayor saldo final primero, con totales.
`
}

func (c *rollupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	uc, closeStore, err := openLedger(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeStore()
	rows, err := uc.BuildRollup(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(RollupMarkdown(rows, engine.RollupTotals(rows)))
	return subcommands.ExitSuccess
}
