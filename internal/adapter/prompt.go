package adapter

import (
	"fmt"
	"strings"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// BuildPrompt assembles the instruction prompt sent to the generative
// backend. Three shapes are produced:
//
//   - a search ran and matched listings: the model is told how many matched
//     and is instructed NOT to enumerate them, because the UI renders the
//     listings as visual cards below the reply;
//   - a search ran and matched nothing: the model is asked to suggest
//     loosening the filters;
//   - no search ran: a plain conversational prompt.
//
// WhatsApp conversations get a shorter tone hint than web ones.
func BuildPrompt(userText string, results []models.Property, searchPerformed bool, filter models.SearchFilter, channel, styleHint string) string {
	tone := "profesional y cálido"
	if channel == "whatsapp" {
		tone = "breve y directo"
	}

	if searchPerformed && len(results) > 0 {
		return buildResultsPrompt(userText, results, tone)
	}

	if searchPerformed {
		return buildNoResultsPrompt(userText, filter)
	}

	return fmt.Sprintf(
		"El usuario dice: '%s'\n\n"+
			"Esta es una consulta general o conversacional.\n\n"+
			"INSTRUCCIONES:\n"+
			"1. Responde de manera natural y útil\n"+
			"2. Si es sobre tipos de propiedades, sugiere usar los filtros\n"+
			"3. Si es una pregunta específica, responde concisamente\n"+
			"4. Invita a realizar una búsqueda si es apropiado\n"+
			"5. Mantén un tono %s\n\n%s",
		userText, tone, styleHint,
	)
}

func buildResultsPrompt(userText string, results []models.Property, tone string) string {
	types := distinctTitled(results, func(p models.Property) string { return p.Type })
	neighborhoods := distinct(results, func(p models.Property) string { return p.Neighborhood })
	operations := distinctTitled(results, func(p models.Property) string { return p.Operation })

	return fmt.Sprintf(
		"El usuario busca: '%s'\n\n"+
			"ENCONTRÉ %d PROPIEDADES que coinciden. "+
			"**IMPORTANTE: Las propiedades se muestran en TARJETAS VISUALES en la interfaz - NO las listes en el texto.**\n\n"+
			"INFORMACIÓN PARA CONTEXTO (NO mostrar al usuario):\n"+
			"- Total propiedades: %d\n"+
			"- Tipos: %s\n"+
			"- Barrios: %s\n"+
			"- Operaciones: %s\n\n"+
			"INSTRUCCIONES ESPECÍFICAS:\n"+
			"1. Da un mensaje BREVE confirmando que encontraste propiedades\n"+
			"2. NO listes las propiedades individualmente\n"+
			"3. NO uses números (1., 2., 3.) ni detalles específicos\n"+
			"4. NO uses emojis de propiedades (🏠, 📍, 💰, 🏢, 📐) en el texto\n"+
			"5. Puedes mencionar patrones generales (ej: 'propiedades en venta', 'varios barrios')\n"+
			"6. Invita al usuario a ver las propiedades en las tarjetas visuales\n"+
			"7. Ofrece ayuda para refinar o preguntar sobre propiedades específicas\n"+
			"8. Mantén un tono %s\n\n"+
			"EJEMPLOS DE RESPUESTAS ADECUADAS:\n"+
			"- '¡Perfecto! Encontré %d propiedades que coinciden con tu búsqueda. Te las muestro abajo 👇'\n"+
			"- 'Excelente, tengo %d opciones que podrían interesarte. Las ves en las tarjetas?'\n"+
			"- 'Encontré propiedades que coinciden con lo que buscas. ¿Te gustaría que ajuste algún filtro?'\n\n"+
			"¡RESPONDE SOLO CON UN MENSAJE BREVE SIN LISTAR PROPIEDADES!",
		userText, len(results), len(results),
		orDefault(types, "Varios"),
		orDefault(neighborhoods, "Varias zonas"),
		orDefault(operations, "Varias"),
		tone, len(results), len(results),
	)
}

func buildNoResultsPrompt(userText string, filter models.SearchFilter) string {
	return fmt.Sprintf(
		"El usuario busca: '%s'\n\n"+
			"NO SE ENCONTRARON PROPIEDADES con los filtros actuales.\n\n"+
			"INSTRUCCIONES:\n"+
			"1. Informa amablemente que no hay resultados\n"+
			"2. Sugiere ajustar filtros o ampliar la búsqueda\n"+
			"3. Pregunta por preferencias más específicas\n"+
			"4. Ofrece ayuda para refinar la búsqueda\n"+
			"5. Mantén un tono positivo y útil\n\n"+
			"Filtros aplicados: %s\n\n"+
			"Ejemplo: 'No encontré propiedades con esos filtros. ¿Querés probar con otros barrios o precios?'",
		userText, describeFilter(filter),
	)
}

// describeFilter renders the active criteria as a short human-readable list
// for the no-results prompt.
func describeFilter(filter models.SearchFilter) string {
	parts := make([]string, 0, 6)

	neighborhood := filter.Neighborhood
	if neighborhood == "" {
		neighborhood = filter.Barrio
	}
	if neighborhood != "" {
		parts = append(parts, "barrio="+neighborhood)
	}
	if filter.Operation != "" {
		parts = append(parts, "operacion="+filter.Operation)
	}
	if filter.Type != "" {
		parts = append(parts, "tipo="+filter.Type)
	}
	if filter.MinPrice != nil {
		parts = append(parts, fmt.Sprintf("precio_min=%.0f", *filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("precio_max=%.0f", *filter.MaxPrice))
	}
	if filter.MinRooms != nil {
		parts = append(parts, fmt.Sprintf("ambientes_min=%d", *filter.MinRooms))
	}
	if filter.MinSquareMeters != nil {
		parts = append(parts, fmt.Sprintf("metros_min=%.0f", *filter.MinSquareMeters))
	}
	if filter.MaxSquareMeters != nil {
		parts = append(parts, fmt.Sprintf("metros_max=%.0f", *filter.MaxSquareMeters))
	}

	if len(parts) == 0 {
		return "ninguno"
	}

	return strings.Join(parts, ", ")
}

func distinct(results []models.Property, field func(models.Property) string) string {
	seen := make(map[string]struct{}, len(results))
	values := make([]string, 0, len(results))

	for _, r := range results {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	return strings.Join(values, ", ")
}

func distinctTitled(results []models.Property, field func(models.Property) string) string {
	titled := func(p models.Property) string {
		v := field(p)
		if v == "" {
			return ""
		}
		return strings.ToUpper(v[:1]) + v[1:]
	}
	return distinct(results, titled)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
