package cli

const usageText = `Leadbook Client

Usage:
  leadbook [OPTIONS] COMMAND

Options:
  --version             Show version information
  --server URL          Server URL (default: http://localhost:8080)
  --countries-url URL   Country directory URL (default: http://localhost:8081)
  --db PATH             Path to local database (default: leadbook-client.db)

Commands:
  register              Register new user
  login                 Login to server
  logout                Logout from server
  status                Show session status
  list [cached]         List leads (cached: from the local snapshot, offline)
  get <id>              Show full lead details
  add                   Create a new lead
  edit <id>             Edit an existing lead
  delete <id>           Delete a lead (asks for confirmation)
  countries             List the country directory

Examples:
  leadbook register
  leadbook login
  leadbook list
  leadbook add
  leadbook edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5
  leadbook delete b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5
  leadbook --server https://example.com login
`

const leadListTemplate = `
=== Leads ===

{{- if eq (len .) 0 }}
No leads found.

Use 'leadbook add' to create your first lead.
{{ else }}
Found {{len .}} lead(s):

{{- range . }}
- {{ .Name }}
   ID:            {{ .ID }}
   Base price:    {{ .BasePrice }}
   Sales profit:  {{ .SalesProfit }}
   {{- if .Country }}
   Country:       {{ .Country }}
   {{- end }}

{{- end }}
Use 'leadbook get <id>' to view full details.
{{- end }}
`

const leadDetailTemplate = `
=== Lead Details ===

Name:          {{.Name}}
ID:            {{.ID}}
Discount rate: {{.DiscountRate}}
Supply price:  {{.SupplyPrice}}
Premium:       {{.Premium}}
Base price:    {{.BasePrice}}
Sales profit:  {{.SalesProfit}}
{{- if .Country }}
Country:       {{.Country}}
{{- end}}
{{- if .Flag }}
Flag:          {{.Flag}}
{{- end}}
`

const countryListTemplate = `
=== Country Directory ===

{{- range . }}
- {{ .Name }} ({{ .Code }})
{{- end }}
`
