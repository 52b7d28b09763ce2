// Package rectab exposes a recommend.Engine as a SQLite virtual table with
// MATCH semantics, so recommendations can be joined with other tables:
//
//	rectab.Register(db)
//	rectab.Attach("movies", eng)
//	CREATE VIRTUAL TABLE recs USING rectab(movies);
//	SELECT title, score FROM recs WHERE title MATCH 'Toy Story' LIMIT 5;
//
// Rows are returned in rank order and exclude the queried item. A query
// title that is not in the catalog yields no rows.
package rectab
