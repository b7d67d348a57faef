// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

/*
Package models defines the records exchanged with the analytics engine.

Every record is a plain value type that is created per request and discarded
once the caller has consumed it. The engine never keeps a reference to a record
after returning, so callers are free to reuse or mutate their inputs.

Record Categories:

 1. Demand forecasting:
    - TimeSeriesPoint, ProductSeries, SaleRecord (inputs)
    - ForecastResult, Seasonality (outputs)

 2. Churn scoring:
    - CustomerFeatureVector (input)
    - ChurnPrediction, ChurnFactor, ChurnSummary (outputs)

 3. Recommendations:
    - ProductFeature, InteractionRecord (inputs)
    - Recommendation (output)

 4. API envelope:
    - APIResponse, APIError, Metadata

Optional Fields:

Optional inputs are pointers. A nil pointer never fails a computation; the
component that reads it falls back to the documented default instead (see the
field comments). Validation tags are only evaluated at the HTTP boundary.

JSON Serialization:

All records use snake_case JSON tags and serialize with github.com/goccy/go-json.
*/
package models
