/*
Package middleware provides HTTP cross-cutting helpers: a request
logging wrapper and JSON request/response utilities shared by every
handler.
*/
package middleware
