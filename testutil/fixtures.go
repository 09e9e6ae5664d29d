package testutil

// Canned /ask response bodies
const (
	KPIResponse = `{"success":true,"sql":"SELECT COUNT(*) AS count FROM pscomppars WHERE pl_rade BETWEEN 0.8 AND 1.25","row_count":1,"cached":false,"visualization":{"type":"kpi","title":"Earth-sized planets","data":[{"count":42}]}}`

	BarResponse = `{"success":true,"sql":"SELECT discoverymethod AS method, COUNT(*) AS count FROM pscomppars GROUP BY discoverymethod","row_count":2,"cached":true,"visualization":{"type":"bar_chart","title":"Planets by discovery method","description":"Confirmed planets grouped by method","data":[{"method":"Transit","count":10},{"method":"RV","count":3}]}}`

	ScatterResponse = `{"success":true,"sql":"SELECT pl_name, pl_rade, pl_bmasse, discoverymethod FROM pscomppars","row_count":3,"visualization":{"type":"scatter","x_field":"pl_rade","y_field":"pl_bmasse","color_field":"discoverymethod","x_label":"Planet Radius (Earth radii)","y_label":"Planet Mass (Earth masses)","y_scale":"log","data":[{"pl_name":"a","pl_rade":1.0,"pl_bmasse":1.0,"discoverymethod":"Transit"},{"pl_name":"b","pl_rade":2.5,"pl_bmasse":8.0,"discoverymethod":"RV"},{"pl_name":"c","pl_rade":11.2,"pl_bmasse":317.8,"discoverymethod":"Transit"}]}}`

	LineResponse = `{"success":true,"sql":"SELECT disc_year, COUNT(*) AS count FROM pscomppars GROUP BY disc_year","row_count":4,"visualization":{"type":"line_chart","title":"Discoveries per year","data":[{"disc_year":2014,"count":870},{"disc_year":2015,"count":156},{"disc_year":2016,"count":1505},{"disc_year":2017,"count":153}]}}`

	TableResponse = `{"success":true,"sql":"SELECT pl_name, pl_eqt FROM pscomppars","row_count":2,"visualization":{"type":"table","data":[{"pl_name":"Kepler-22 b","pl_eqt":262.0},{"pl_name":"TOI-700 d","pl_eqt":null}]}}`

	EmptyResponse = `{"success":true,"sql":"SELECT pl_name FROM pscomppars WHERE 1=0","row_count":0,"visualization":{"type":"table","data":[]}}`

	MalformedDataResponse = `{"success":true,"sql":"SELECT pl_name FROM pscomppars","row_count":7,"cached":true,"visualization":{"type":"table","title":"Planet names","data":"oops"}}`

	ParseErrorResponse = `{"success":false,"error":"parse error"}`

	SilentFailureResponse = `{"success":false}`
)

// EarthSizedQuestion is the question paired with KPIResponse
const EarthSizedQuestion = "How many Earth-sized planets have been discovered?"
