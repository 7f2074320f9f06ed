package actions

// OK status code
const OK = 200

// Created status code
const Created = 201

// BadRequest status code
const BadRequest = 400

// Unauthorized status code
const Unauthorized = 401

// AccessDenied status code
const AccessDenied = 403

// NotFound status code
const NotFound = 404

// ValidationFailed status code
const ValidationFailed = 422

// ServerError status code
const ServerError = 500
