package i18n

var messages = map[Lang]map[string]string{
	English: {
		// summary
		"summary_header": "=== Expense Summary ===",
		"summary_line":   "Category: %s, Total: %s",
		"total_expenses": "Total expenses: %s",
		"no_expenses":    "No expenses recorded.",

		// listing / filter
		"filter_results_header": "=== Filtered Expenses ===",
		"no_results":            "No expenses found for this period.",

		// budget
		"budget_header":        "=== Budget Check ===",
		"budget_ok":            "Within budget for %s.",
		"budget_warning":       "Nearing the limit for %s.",
		"budget_exceeded":      "Over budget for %s!",
		"budget_line":          "%s: %s / %s (%.0f%%)",
		"budget_unmonitored":   "No limit configured for %s (spent %s).",
		"budget_limit_updated": "Budget limit updated successfully!",

		// limits
		"limits_header":      "=== Budget Limits ===",
		"limit_line":         "Category: %s, Limit: %s",
		"no_limits_set":      "No budget limits have been set.",
		"suggestions_header": "Suggestions (last 3 months)",

		// actions
		"expense_added":     "Expense added successfully!",
		"expense_deleted":   "Expense deleted.",
		"export_done":       "Exported %d records.",
		"import_done":       "Limits imported from CSV.",
		"expenses_imported": "Imported %d expenses.",
		"migrate_done":      "Imported %d expenses and %d limits.",
	},
	French: {
		// summary
		"summary_header": "=== Résumé des Dépenses ===",
		"summary_line":   "Catégorie : %s, Total : %s",
		"total_expenses": "Dépenses totales : %s",
		"no_expenses":    "Aucune dépense enregistrée.",

		// listing / filter
		"filter_results_header": "=== Dépenses Filtrées ===",
		"no_results":            "Aucune dépense trouvée pour cette période.",

		// budget
		"budget_header":        "=== Vérification du Budget ===",
		"budget_ok":            "Dans le budget pour %s.",
		"budget_warning":       "Proche de la limite pour %s.",
		"budget_exceeded":      "Dépassement du budget pour %s !",
		"budget_line":          "%s : %s / %s (%.0f%%)",
		"budget_unmonitored":   "Aucune limite configurée pour %s (dépensé %s).",
		"budget_limit_updated": "Limite budgétaire mise à jour avec succès !",

		// limits
		"limits_header":      "=== Limites Budgétaires ===",
		"limit_line":         "Catégorie : %s, Limite : %s",
		"no_limits_set":      "Aucune limite budgétaire n'a été définie.",
		"suggestions_header": "Suggestions (3 derniers mois)",

		// actions
		"expense_added":     "Dépense ajoutée avec succès !",
		"expense_deleted":   "Dépense supprimée.",
		"export_done":       "%d enregistrements exportés.",
		"import_done":       "Limites importées depuis le CSV.",
		"expenses_imported": "%d dépenses importées.",
		"migrate_done":      "%d dépenses et %d limites importées.",
	},
	Spanish: {
		// summary
		"summary_header": "=== Resumen de Gastos ===",
		"summary_line":   "Categoría: %s, Total: %s",
		"total_expenses": "Gastos totales: %s",
		"no_expenses":    "No se registraron gastos.",

		// listing / filter
		"filter_results_header": "=== Gastos Filtrados ===",
		"no_results":            "No se encontraron gastos para este período.",

		// budget
		"budget_header":        "=== Revisión del Presupuesto ===",
		"budget_ok":            "Dentro del presupuesto para %s.",
		"budget_warning":       "Cerca del límite para %s.",
		"budget_exceeded":      "¡Presupuesto excedido para %s!",
		"budget_line":          "%s: %s / %s (%.0f%%)",
		"budget_unmonitored":   "Sin límite configurado para %s (gastado %s).",
		"budget_limit_updated": "¡Límite de presupuesto actualizado con éxito!",

		// limits
		"limits_header":      "=== Límites de Presupuesto ===",
		"limit_line":         "Categoría: %s, Límite: %s",
		"no_limits_set":      "No se han establecido límites de presupuesto.",
		"suggestions_header": "Sugerencias (últimos 3 meses)",

		// actions
		"expense_added":     "¡Gasto agregado con éxito!",
		"expense_deleted":   "Gasto eliminado.",
		"export_done":       "%d registros exportados.",
		"import_done":       "Límites importados desde CSV.",
		"expenses_imported": "%d gastos importados.",
		"migrate_done":      "%d gastos y %d límites importados.",
	},
}
