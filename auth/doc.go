/*
Package auth holds identity helpers: poll id allocation and the admin
gate.

Admin authorization is an exact match between the invoking user id and
the single configured admin id. Failures are silent by policy - a
non-admin poking at an admin command gets no reply at all, so the
privileged command surface is never revealed.
*/
package auth
