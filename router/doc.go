/*
Package router defines the gateway route table on a stdlib ServeMux
using Go 1.22+ method+path patterns. Every route is wrapped with the
request-logging middleware.
*/
package router
