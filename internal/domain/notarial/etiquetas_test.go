package notarial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	"github.com/jhoicas/notaria-textos/internal/domain/notarial"
)

func TestRoleLabel(t *testing.T) {
	casos := []struct {
		calidad, genero, esperado string
	}{
		{entity.CalidadVendedor, entity.GeneroFemenino, "VENDEDORA"},
		{entity.CalidadVendedor, entity.GeneroMasculino, "VENDEDOR"},
		{entity.CalidadDeudorHipotecario, entity.GeneroFemenino, "DEUDORA HIPOTECARIA"},
		{entity.CalidadDonante, entity.GeneroFemenino, "DONANTE"},
		{"", "", "COMPARECIENTE"},
		{"USUFRUCTUARIO_VITALICIO", entity.GeneroFemenino, "USUFRUCTUARIO VITALICIO"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, notarial.RoleLabel(c.calidad, c.genero), c.calidad+"/"+c.genero)
	}
}
