// Command tagrec is a small command-line front end for the tag similarity
// recommender: list catalog titles, ask for recommendations, or copy a CSV
// catalog into SQLite.
package main
