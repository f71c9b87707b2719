package migrations

const fathomTeamsDescription = `Array of Fathom team names to import calls from. Empty array = import from all teams. Example: ["Sales", "Marketing"]`

// AddFathomTeamsToSalesReps adds the fathom_teams column, its GIN index and comment.
var AddFathomTeamsToSalesReps = Migration{
	Name: "Add fathom_teams to sales_reps table",
	Statements: []Statement{
		{
			Name:  "add fathom_teams column",
			Query: `ALTER TABLE sales_reps ADD COLUMN IF NOT EXISTS fathom_teams TEXT[] DEFAULT '{}'`,
		},
		{
			Name:  "add fathom_teams index",
			Query: `CREATE INDEX IF NOT EXISTS idx_sales_reps_fathom_teams ON sales_reps USING GIN(fathom_teams)`,
		},
		{
			Name:  "comment fathom_teams column",
			Query: `COMMENT ON COLUMN sales_reps.fathom_teams IS '` + fathomTeamsDescription + `'`,
		},
	},
	Table:   "sales_reps",
	Column:  "fathom_teams",
	Index:   "idx_sales_reps_fathom_teams",
	UDTName: "_text",
}
