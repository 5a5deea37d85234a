// Package renderer renders the profile views as markdown documents.
//
// Every function takes the currency code used to display amounts.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/chaucha"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the home screen.
func Dashboard(d chaucha.Dashboard, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Hola, %s", d.Name))
	doc.PlainText(fmt.Sprintf("Disponible: %s", md.Bold(d.Available.Format(cur))))

	doc.H2("Cuenta")
	doc.Table(md.TableSet{
		Header: []string{"", "Monto"},
		Rows: [][]string{
			{"Saldo", d.Balance.Format(cur)},
			{"Tarjeta usada", d.CreditUsed.Format(cur)},
			{"Cupo", d.CreditLimit.Format(cur)},
			{"Cupo disponible", d.CreditAvailable.Format(cur)},
			{"Uso de la tarjeta", fmt.Sprintf("%s %s", bar(d.CreditUsage), d.CreditUsage)},
		},
	})
	switch {
	case d.OverLimit:
		doc.PlainText(md.Bold("Atención: superaste el cupo de tu tarjeta."))
	case d.CreditWarning:
		doc.PlainText(md.Bold(fmt.Sprintf("Atención: usas más del %s de tu cupo.", chaucha.CreditWarningThreshold.Rounded())))
	}

	doc.H2("Últimos movimientos")
	if len(d.Recent) == 0 {
		doc.PlainText("Sin movimientos.")
	} else {
		doc.Table(transactionTable(d.Recent, cur))
	}
	return doc.String()
}

// NotConfigured renders the message shown before onboarding.
func NotConfigured() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Bienvenido a Chaucha")
	doc.PlainText("Tu perfil aún no está configurado. Empieza con `chaucha onboard`.")
	return doc.String()
}

// Budget renders the monthly budget with its fixed and variable expenses.
func Budget(b chaucha.Budget, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Presupuesto")
	doc.PlainText(fmt.Sprintf("Te quedan %s este mes.", md.Bold(b.Remaining.Format(cur))))
	doc.Table(md.TableSet{
		Header: []string{"", "Monto"},
		Rows: [][]string{
			{"Ingreso mensual", b.Income.Format(cur)},
			{"Gastos fijos", b.TotalFixed.Format(cur)},
			{"Gastos variables", b.TotalVariable.Format(cur)},
			{"Total gastos", b.TotalExpenses.Format(cur)},
			{"Restante", b.Remaining.Format(cur)},
		},
	})

	doc.H2("Gastos fijos")
	if len(b.FixedExpenses) == 0 {
		doc.PlainText("Sin gastos fijos.")
	} else {
		rows := make([][]string, 0, len(b.FixedExpenses))
		for _, e := range b.FixedExpenses {
			rows = append(rows, []string{check(e.Paid), e.Name, e.Amount.Format(cur), e.ID})
		}
		doc.Table(md.TableSet{Header: []string{"Pagado", "Nombre", "Monto", "ID"}, Rows: rows})
		doc.PlainText(fmt.Sprintf("Pagado %s, pendiente %s.", b.PaidFixed.Format(cur), b.PendingFixed.Format(cur)))
	}

	doc.H2("Gastos variables")
	if len(b.Variable) == 0 {
		doc.PlainText("Sin gastos variables.")
	} else {
		doc.Table(variableTable(b.Variable, cur))
	}
	return doc.String()
}

// VariableExpenses renders the variable expense breakdown alone.
func VariableExpenses(list []chaucha.VariableExpense, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Gastos variables")
	if len(list) == 0 {
		doc.PlainText("Sin gastos variables.")
		return doc.String()
	}
	doc.Table(variableTable(list, cur))
	return doc.String()
}

func variableTable(list []chaucha.VariableExpense, cur string) md.TableSet {
	rows := make([][]string, 0, len(list))
	for _, v := range list {
		rows = append(rows, []string{v.Category, v.Amount.Format(cur), v.Percentage.String(), bar(v.Percentage)})
	}
	return md.TableSet{Header: []string{"Categoría", "Monto", "%", ""}, Rows: rows}
}

// Goals renders the savings goals with their progress.
func Goals(goals []chaucha.Goal, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Metas")
	if len(goals) == 0 {
		doc.PlainText("Aún no tienes metas. Crea una con `chaucha add-goal`.")
		return doc.String()
	}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			g.Name,
			string(g.Type),
			g.CurrentAmount.Format(cur),
			g.TargetAmount.Format(cur),
			fmt.Sprintf("%s %s", bar(g.Progress()), g.Progress().Rounded()),
			orDash(g.Deadline),
			g.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Meta", "Tipo", "Ahorrado", "Objetivo", "Progreso", "Plazo", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

// Transactions renders a list of transactions.
func Transactions(txs []chaucha.Transaction, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Movimientos")
	if len(txs) == 0 {
		doc.PlainText("Sin movimientos.")
		return doc.String()
	}
	doc.Table(transactionTable(txs, cur))
	return doc.String()
}

func transactionTable(txs []chaucha.Transaction, cur string) md.TableSet {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		kind := "variable"
		if tx.IsFixed {
			kind = "fijo"
		}
		rows = append(rows, []string{tx.Date, tx.Description, tx.Category, kind, tx.Amount.SignedString(cur)})
	}
	return md.TableSet{Header: []string{"Fecha", "Descripción", "Categoría", "Tipo", "Monto"}, Rows: rows}
}

// Settings renders the settings screen. location tells where the profile is stored.
func Settings(u chaucha.UserData, location, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Ajustes")
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Nombre", orDash(u.Name)},
			{"Ingreso mensual", u.MonthlyIncome.Format(cur)},
			{"Saldo", u.CurrentBalance.Format(cur)},
			{"Tarjeta", fmt.Sprintf("%s de %s", u.CreditCardUsed.Format(cur), u.CreditCardLimit.Format(cur))},
			{"Moneda", cur},
			{"Datos", location},
		},
	})
	doc.PlainText("Usa `chaucha set` para cambiar estos valores y `chaucha reset` para borrar todos tus datos.")
	return doc.String()
}

// Profile renders everything known about the user in one document, for the mentor.
func Profile(u chaucha.UserData, cur string) string {
	var buf bytes.Buffer
	buf.WriteString(Dashboard(chaucha.NewDashboard(u), cur))
	buf.WriteString("\n")
	buf.WriteString(Budget(chaucha.NewBudget(u), cur))
	buf.WriteString("\n")
	buf.WriteString(Goals(u.Goals, cur))
	return buf.String()
}
