/*
Package form adapts waypoint Fields to HTML form submissions.

[NewSelect] renders a Field's ChoiceList as selectable options without
duplicating coercion logic, and [Coerce] decodes the submitted value back into
a Member under the same primitive equality, so a rendered option always
round-trips. A blank submission is no selection, distinct from an invalid one.

[Decoder] populates whole structs from url.Values through gorilla/schema and
validates them with go-playground/validator, including the "enum" rule over
[waypoint.Enumerable] fields. Validation failures surface per-field as
[ValidationErrors]; configuration mistakes escalate as waypoint sentinels.
*/
package form
