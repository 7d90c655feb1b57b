/*
Package postgres adapts waypoint Fields to a PostgreSQL database accessed through GORM.

A [Column] pairs a column name with the [waypoint.Field] validating it and
renders DDL whose CHECK constraint enumerates the same members the Field does,
keeping the database and the application agreeing on what the enum admits.
[Table] and [Registry] collect Columns for an application's schema;
register everything at startup so a misconfigured schema halts the process
instead of surfacing one row at a time.

[Store] is a narrow read/write surface over registered Tables:
it encodes enum values through Field.ToStorage before an INSERT
and re-validates primitives through Field.FromStorage after a SELECT.
*/
package postgres
