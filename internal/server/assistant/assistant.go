package assistant

import (
	"context"
	"fmt"
	"strings"

	"dante/internal/domain"
)

// Facts is what the assistant may draw on when answering.
type Facts struct {
	Company  domain.Company
	Products []domain.Product
	Clients  []domain.Client
	History  []domain.ChatExchange
}

// Assistant produces a reply to message given facts.
type Assistant interface {
	Reply(ctx context.Context, facts Facts, message string) (string, error)
}

// Instructions renders facts into system instructions for a model.
func Instructions(f Facts) string {
	name := f.Company.CompanyName
	if name == "" {
		name = f.Company.Name
	}
	var b strings.Builder
	b.WriteString("Eres Dante, un asistente que ayuda a los departamentos administrativos de los negocios ")
	b.WriteString("con estadísticas y control de registros.\n")
	b.WriteString("Responde en el idioma del usuario, de forma breve y sin comillas.\n")
	fmt.Fprintf(&b, "Trabajas para %s.", name)
	if f.Company.Phone != "" {
		fmt.Fprintf(&b, " Teléfono: %s.", f.Company.Phone)
	}
	if f.Company.Address != "" {
		fmt.Fprintf(&b, " Ubicación: %s.", f.Company.Address)
	}
	b.WriteString("\n")

	if len(f.Products) > 0 {
		b.WriteString("\nProductos:\n")
		for _, p := range f.Products {
			fmt.Fprintf(&b, "- %s: %d en existencia, precio %.2f", p.Name, p.Stock, p.Price)
			if !p.IsActive {
				b.WriteString(" (inactivo)")
			}
			b.WriteString("\n")
		}
	}
	if len(f.Clients) > 0 {
		b.WriteString("\nClientes:\n")
		for _, c := range f.Clients {
			fmt.Fprintf(&b, "- %s", c.Name)
			if c.Address != "" {
				fmt.Fprintf(&b, ", %s", c.Address)
			}
			if c.Phone != "" {
				fmt.Fprintf(&b, ", tel. %s", c.Phone)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Placeholder answers without a model with a deterministic summary of facts.
type Placeholder struct{}

func (Placeholder) Reply(_ context.Context, f Facts, message string) (string, error) {
	var units int
	var value float64
	for _, p := range f.Products {
		units += p.Stock
		value += float64(p.Stock) * p.Price
	}
	name := f.Company.CompanyName
	if name == "" {
		name = f.Company.Name
	}
	return fmt.Sprintf("Hola, soy Dante. %s tiene %d productos (%d unidades, valor %.2f) y %d clientes. "+
		"El asistente inteligente no está configurado; recibí tu mensaje: %q",
		name, len(f.Products), units, value, len(f.Clients), message), nil
}
